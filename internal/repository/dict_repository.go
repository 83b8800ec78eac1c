package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
)

type DictRepository interface {
	List(ctx context.Context) ([]*model.SysDict, error)
	GetByName(ctx context.Context, name string) (*model.SysDict, error)
	Save(ctx context.Context, d *model.SysDict) error
	Delete(ctx context.Context, id int64) error
}

type dictRepository struct{ db *gorm.DB }

func NewDictRepository(db *gorm.DB) DictRepository { return &dictRepository{db: db} }

func (r *dictRepository) List(ctx context.Context) ([]*model.SysDict, error) {
	var res []*model.SysDict
	err := r.db.WithContext(ctx).Order("id").Find(&res).Error
	return res, err
}

func (r *dictRepository) GetByName(ctx context.Context, name string) (*model.SysDict, error) {
	var d model.SysDict
	if err := r.db.WithContext(ctx).Where("dict_name = ?", name).First(&d).Error; err != nil {
		return nil, translate(err, "dict_name", name)
	}
	return &d, nil
}

func (r *dictRepository) Save(ctx context.Context, d *model.SysDict) error {
	return translate(save(r.db.WithContext(ctx), d, d.ID), "dict_name", d.DictName)
}

func (r *dictRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.SysDict{}, id).Error
}
