package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
)

var ErrDictNotFound = errors.New("dict not found")

// DictService 字典配置；重名保存返回 *repository.DuplicateError
type DictService interface {
	List(ctx context.Context) ([]*model.SysDict, error)
	Get(ctx context.Context, name string) (*model.SysDict, error)
	Save(ctx context.Context, d *model.SysDict) error
	Delete(ctx context.Context, id int64) error
}

type dictService struct {
	repo repository.DictRepository
}

func NewDictService(repo repository.DictRepository) DictService {
	return &dictService{repo: repo}
}

func (s *dictService) List(ctx context.Context) ([]*model.SysDict, error) {
	return s.repo.List(ctx)
}

func (s *dictService) Get(ctx context.Context, name string) (*model.SysDict, error) {
	d, err := s.repo.GetByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDictNotFound
	}
	return d, err
}

func (s *dictService) Save(ctx context.Context, d *model.SysDict) error {
	err := s.repo.Save(ctx, d)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrDictNotFound
	}
	return err
}

func (s *dictService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
