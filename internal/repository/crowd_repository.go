package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
)

// CrowdQuery 标题、描述为模糊匹配，空串不过滤
type CrowdQuery struct {
	Title    string
	Describe string
	Offset   int
	Limit    int
}

type CrowdRepository interface {
	List(ctx context.Context) ([]*model.Crowd, error)
	Page(ctx context.Context, q CrowdQuery) ([]*model.Crowd, int64, error)
	GetByID(ctx context.Context, id int64) (*model.Crowd, error)
	Save(ctx context.Context, c *model.Crowd) error
	Delete(ctx context.Context, id int64) error
}

type crowdRepository struct{ db *gorm.DB }

func NewCrowdRepository(db *gorm.DB) CrowdRepository { return &crowdRepository{db: db} }

func (r *crowdRepository) List(ctx context.Context) ([]*model.Crowd, error) {
	var res []*model.Crowd
	err := r.db.WithContext(ctx).Order("id DESC").Find(&res).Error
	return res, err
}

func (r *crowdRepository) Page(ctx context.Context, q CrowdQuery) ([]*model.Crowd, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Crowd{})
	if q.Title != "" {
		tx = tx.Where(likeWhere("crowd_title"), like(q.Title))
	}
	if q.Describe != "" {
		tx = tx.Where(likeWhere("crowd_describe"), like(q.Describe))
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Crowd
	err := tx.Order("id DESC").Offset(q.Offset).Limit(q.Limit).Find(&res).Error
	return res, total, err
}

func (r *crowdRepository) GetByID(ctx context.Context, id int64) (*model.Crowd, error) {
	var c model.Crowd
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, "id", fmt.Sprint(id))
	}
	return &c, nil
}

func (r *crowdRepository) Save(ctx context.Context, c *model.Crowd) error {
	return save(r.db.WithContext(ctx), c, c.ID)
}

func (r *crowdRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Crowd{}, id).Error
}
