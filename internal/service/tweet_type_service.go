package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
)

var (
	ErrTweetTypeInUse    = errors.New("tweet type is in use")
	ErrTweetTypeNotFound = errors.New("tweet type not found")
)

// TweetTypeService 两级类目
type TweetTypeService interface {
	Tree(ctx context.Context) ([]*model.TweetTypeNode, error)
	Save(ctx context.Context, t *model.TweetType) error
	// Delete 有推文以该类目为一级或二级类目时拒绝删除
	Delete(ctx context.Context, id int64) error
}

type tweetTypeService struct {
	typeRepo  repository.TweetTypeRepository
	tweetRepo repository.TweetRepository
}

func NewTweetTypeService(typeRepo repository.TweetTypeRepository, tweetRepo repository.TweetRepository) TweetTypeService {
	return &tweetTypeService{typeRepo: typeRepo, tweetRepo: tweetRepo}
}

func (s *tweetTypeService) Tree(ctx context.Context) ([]*model.TweetTypeNode, error) {
	types, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	nodes := make(map[int64]*model.TweetTypeNode, len(types))
	for _, t := range types {
		nodes[t.ID] = &model.TweetTypeNode{TweetType: *t}
	}
	roots := make([]*model.TweetTypeNode, 0)
	for _, t := range types {
		n := nodes[t.ID]
		if t.ParentID == nil {
			roots = append(roots, n)
			continue
		}
		if p, ok := nodes[*t.ParentID]; ok {
			p.Children = append(p.Children, n)
		}
	}
	return roots, nil
}

func (s *tweetTypeService) Save(ctx context.Context, t *model.TweetType) error {
	if t.ParentID != nil && *t.ParentID == 0 {
		t.ParentID = nil
	}
	return s.typeRepo.Save(ctx, t)
}

func (s *tweetTypeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.typeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTweetTypeNotFound
		}
		return err
	}
	n, err := s.tweetRepo.CountUsingType(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTweetTypeInUse
	}
	return s.typeRepo.Delete(ctx, id)
}
