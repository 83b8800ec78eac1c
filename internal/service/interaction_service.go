package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
)

var ErrInvalidRecordType = errors.New("invalid record type")

// 点赞/收藏操作
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// InteractionStatus 当前用户对某推文的点赞/收藏状态
type InteractionStatus struct {
	Like            bool  `json:"like"`
	Collect         bool  `json:"collect"`
	LikeRecordID    int64 `json:"likeRecordId,omitempty"`
	CollectRecordID int64 `json:"collectRecordId,omitempty"`
}

// InteractionService 点赞、收藏、浏览
type InteractionService interface {
	Toggle(ctx context.Context, userID, tweetID int64, typ, action string) error
	Browse(ctx context.Context, userID, tweetID int64) error
	Status(ctx context.Context, userID, tweetID int64) (*InteractionStatus, error)
	Records(ctx context.Context, userID int64, typ string, page, pageSize int) (*PageResult, error)
}

type interactionService struct {
	records  repository.RecordRepository
	tweets   repository.TweetRepository
	recorder *BrowseRecorder
}

// NewInteractionService recorder 为 nil 时浏览同步落库
func NewInteractionService(records repository.RecordRepository, tweets repository.TweetRepository, recorder *BrowseRecorder) InteractionService {
	return &interactionService{records: records, tweets: tweets, recorder: recorder}
}

func (s *interactionService) Toggle(ctx context.Context, userID, tweetID int64, typ, action string) error {
	if typ != model.RecordLike && typ != model.RecordCollect {
		return ErrInvalidRecordType
	}
	if action == ActionRemove {
		_, err := s.records.Remove(ctx, userID, tweetID, typ)
		return err
	}
	if err := s.ensureTweet(ctx, tweetID); err != nil {
		return err
	}
	_, err := s.records.Add(ctx, userID, tweetID, typ)
	return err
}

func (s *interactionService) Browse(ctx context.Context, userID, tweetID int64) error {
	if err := s.ensureTweet(ctx, tweetID); err != nil {
		return err
	}
	if s.recorder != nil && s.recorder.Enqueue(userID, tweetID) {
		return nil
	}
	return s.records.Touch(ctx, userID, tweetID, model.RecordBrowse)
}

func (s *interactionService) Status(ctx context.Context, userID, tweetID int64) (*InteractionStatus, error) {
	recs, err := s.records.ListByUserTweet(ctx, userID, tweetID)
	if err != nil {
		return nil, err
	}
	st := &InteractionStatus{}
	for _, r := range recs {
		switch r.Type {
		case model.RecordLike:
			st.Like, st.LikeRecordID = true, r.ID
		case model.RecordCollect:
			st.Collect, st.CollectRecordID = true, r.ID
		}
	}
	return st, nil
}

func (s *interactionService) Records(ctx context.Context, userID int64, typ string, page, pageSize int) (*PageResult, error) {
	switch typ {
	case model.RecordLike, model.RecordCollect, model.RecordBrowse:
	default:
		return nil, ErrInvalidRecordType
	}
	page, pageSize = normalizePage(page, pageSize)
	total, err := s.records.Count(ctx, userID, typ)
	if err != nil {
		return nil, err
	}
	rows, err := s.records.ListRows(ctx, userID, typ, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return newPageResult(page, pageSize, total, rows), nil
}

func (s *interactionService) ensureTweet(ctx context.Context, tweetID int64) error {
	_, err := s.tweets.GetByID(ctx, tweetID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTweetNotFound
	}
	return err
}
