package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
)

var ErrCrowdNotFound = errors.New("crowd not found")

// CrowdPageQuery 人群分页条件
type CrowdPageQuery struct {
	Page     int
	PageSize int
	Title    string
	Describe string
}

// CrowdService 人群维护
type CrowdService interface {
	List(ctx context.Context) ([]*model.Crowd, error)
	Page(ctx context.Context, q CrowdPageQuery) (*PageResult, error)
	// Save id 为 0 时新建，否则更新非零字段
	Save(ctx context.Context, c *model.Crowd) error
	Delete(ctx context.Context, id int64) error
}

type crowdService struct {
	repo repository.CrowdRepository
}

func NewCrowdService(repo repository.CrowdRepository) CrowdService {
	return &crowdService{repo: repo}
}

func (s *crowdService) List(ctx context.Context) ([]*model.Crowd, error) {
	return s.repo.List(ctx)
}

func (s *crowdService) Page(ctx context.Context, q CrowdPageQuery) (*PageResult, error) {
	page, size := normalizePage(q.Page, q.PageSize)
	items, total, err := s.repo.Page(ctx, repository.CrowdQuery{
		Title:    q.Title,
		Describe: q.Describe,
		Offset:   (page - 1) * size,
		Limit:    size,
	})
	if err != nil {
		return nil, err
	}
	return newPageResult(page, size, total, items), nil
}

func (s *crowdService) Save(ctx context.Context, c *model.Crowd) error {
	err := s.repo.Save(ctx, c)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCrowdNotFound
	}
	return err
}

func (s *crowdService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
