package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/pkg/logger"
)

var ErrTweetNotFound = errors.New("tweet not found")

// TweetPageQuery 推文分页条件，OrderBy 为 hot 或 new
type TweetPageQuery struct {
	Page     int
	PageSize int
	TypePID  *int64
	OrderBy  string
}

// TweetService 推文管理与查询
type TweetService interface {
	Page(ctx context.Context, q TweetPageQuery) (*PageResult, error)
	Detail(ctx context.Context, id int64) (*model.TweetView, error)
	// Save id 为 0 时新建，否则更新（不改计数）
	Save(ctx context.Context, t *model.Tweet) error
	Delete(ctx context.Context, id int64) error
	// ListByIDs 按 ids 顺序返回
	ListByIDs(ctx context.Context, ids []int64) ([]*model.Tweet, error)
}

// PopularInvalidator 推文增删改后清掉热门缓存
type PopularInvalidator interface {
	Invalidate(ctx context.Context) error
}

type tweetService struct {
	tweetRepo repository.TweetRepository
	typeRepo  repository.TweetTypeRepository
	popular   PopularInvalidator
}

// NewTweetService popular 可为 nil（未启用 Redis 缓存）
func NewTweetService(tweetRepo repository.TweetRepository, typeRepo repository.TweetTypeRepository, popular PopularInvalidator) TweetService {
	return &tweetService{tweetRepo: tweetRepo, typeRepo: typeRepo, popular: popular}
}

func (s *tweetService) Page(ctx context.Context, q TweetPageQuery) (*PageResult, error) {
	page, size := normalizePage(q.Page, q.PageSize)
	items, total, err := s.tweetRepo.List(ctx, repository.TweetQuery{
		Offset:  (page - 1) * size,
		Limit:   size,
		TypePID: q.TypePID,
		OrderBy: q.OrderBy,
	})
	if err != nil {
		return nil, err
	}
	return newPageResult(page, size, total, items), nil
}

func (s *tweetService) Detail(ctx context.Context, id int64) (*model.TweetView, error) {
	t, err := s.tweetRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTweetNotFound
	}
	if err != nil {
		return nil, err
	}

	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(types))
	for _, tt := range types {
		names[tt.ID] = tt.Name
	}

	view := &model.TweetView{Tweet: t, TypePidName: names[t.TypePID], TypeCidNames: []string{}}
	for _, cid := range repository.SplitTypeIDs(t.TypeCIDs) {
		if n, ok := names[cid]; ok {
			view.TypeCidNames = append(view.TypeCidNames, n)
		}
	}
	return view, nil
}

func (s *tweetService) Save(ctx context.Context, t *model.Tweet) error {
	var err error
	if t.ID == 0 {
		err = s.tweetRepo.Create(ctx, t)
	} else {
		err = s.tweetRepo.Update(ctx, t)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTweetNotFound
	}
	if err != nil {
		return err
	}
	s.invalidatePopular(ctx)
	return nil
}

func (s *tweetService) Delete(ctx context.Context, id int64) error {
	if err := s.tweetRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePopular(ctx)
	return nil
}

// invalidatePopular 缓存清理失败只记日志，等 TTL 过期
func (s *tweetService) invalidatePopular(ctx context.Context) {
	if s.popular == nil {
		return
	}
	if err := s.popular.Invalidate(ctx); err != nil {
		logger.Warn("invalidate popular cache failed", zap.Error(err))
	}
}

func (s *tweetService) ListByIDs(ctx context.Context, ids []int64) ([]*model.Tweet, error) {
	tweets, err := s.tweetRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(tweets, ids), nil
}
