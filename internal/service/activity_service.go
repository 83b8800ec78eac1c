package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
)

var (
	ErrAlreadyJoined    = errors.New("already joined the activity")
	ErrActivityNotFound = errors.New("activity not found")
)

// JoinInput 参与活动；GetMsg 为真时写一条站内消息
type JoinInput struct {
	UserID     int64
	ActivityID int64
	Title      string
	GetMsg     bool
}

type ActivityService interface {
	Page(ctx context.Context, actType string, page, pageSize int) (*PageResult, error)
	Detail(ctx context.Context, id int64) (*model.Activity, error)
	Save(ctx context.Context, a *model.Activity) error
	Delete(ctx context.Context, id int64) error

	Join(ctx context.Context, in JoinInput) error
	JoinedIDs(ctx context.Context, userID int64) ([]int64, error)
	Joined(ctx context.Context, userID int64) ([]*model.Activity, error)
	Messages(ctx context.Context, userID int64) ([]*model.ClientMessage, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) Page(ctx context.Context, actType string, page, pageSize int) (*PageResult, error) {
	page, pageSize = normalizePage(page, pageSize)
	items, total, err := s.repo.List(ctx, actType, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return newPageResult(page, pageSize, total, items), nil
}

func (s *activityService) Detail(ctx context.Context, id int64) (*model.Activity, error) {
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrActivityNotFound
	}
	return a, err
}

func (s *activityService) Save(ctx context.Context, a *model.Activity) error {
	err := s.repo.Save(ctx, a)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrActivityNotFound
	}
	return err
}

func (s *activityService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *activityService) Join(ctx context.Context, in JoinInput) error {
	a, err := s.Detail(ctx, in.ActivityID)
	if err != nil {
		return err
	}
	err = s.repo.Join(ctx, in.ActivityID, in.UserID)
	var dup *repository.DuplicateError
	if errors.As(err, &dup) {
		return ErrAlreadyJoined
	}
	if err != nil {
		return err
	}

	if in.GetMsg {
		title := in.Title
		if title == "" {
			title = a.Title
		}
		return s.repo.AddMessage(ctx, in.UserID, fmt.Sprintf("参与了活动 - [%s]", title))
	}
	return nil
}

func (s *activityService) JoinedIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.repo.JoinedIDs(ctx, userID)
}

func (s *activityService) Joined(ctx context.Context, userID int64) ([]*model.Activity, error) {
	return s.repo.Joined(ctx, userID)
}

func (s *activityService) Messages(ctx context.Context, userID int64) ([]*model.ClientMessage, error) {
	return s.repo.Messages(ctx, userID)
}
