package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
)

type ClientUserRepository interface {
	GetByOpenID(ctx context.Context, openID string) (*model.ClientUser, error)
	GetByID(ctx context.Context, id int64) (*model.ClientUser, error)
	Create(ctx context.Context, u *model.ClientUser) error
	UpdateProfile(ctx context.Context, u *model.ClientUser) error

	// Page 后台分页，nickName 模糊匹配
	Page(ctx context.Context, nickName string, offset, limit int) ([]*model.ClientUser, int64, error)
	// AdminUpdate 后台修改，可改状态，不改 openid
	AdminUpdate(ctx context.Context, u *model.ClientUser) error
	Delete(ctx context.Context, id int64) error
}

type clientUserRepository struct{ db *gorm.DB }

func NewClientUserRepository(db *gorm.DB) ClientUserRepository {
	return &clientUserRepository{db: db}
}

func (r *clientUserRepository) GetByOpenID(ctx context.Context, openID string) (*model.ClientUser, error) {
	var u model.ClientUser
	if err := r.db.WithContext(ctx).Where("open_id = ?", openID).First(&u).Error; err != nil {
		return nil, translate(err, "open_id", openID)
	}
	return &u, nil
}

func (r *clientUserRepository) GetByID(ctx context.Context, id int64) (*model.ClientUser, error) {
	var u model.ClientUser
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "id", fmt.Sprint(id))
	}
	return &u, nil
}

func (r *clientUserRepository) Create(ctx context.Context, u *model.ClientUser) error {
	return translate(r.db.WithContext(ctx).Create(u).Error, "open_id", u.OpenID)
}

// UpdateProfile 只更新非零值的资料字段
func (r *clientUserRepository) UpdateProfile(ctx context.Context, u *model.ClientUser) error {
	return r.update(ctx, u, "id", "open_id", "status", "create_time", "create_user")
}

func (r *clientUserRepository) AdminUpdate(ctx context.Context, u *model.ClientUser) error {
	return r.update(ctx, u, "id", "open_id", "create_time", "create_user")
}

func (r *clientUserRepository) update(ctx context.Context, u *model.ClientUser, omit ...string) error {
	res := r.db.WithContext(ctx).Model(&model.ClientUser{ID: u.ID}).Omit(omit...).Updates(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *clientUserRepository) Page(ctx context.Context, nickName string, offset, limit int) ([]*model.ClientUser, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.ClientUser{})
	if nickName != "" {
		tx = tx.Where(likeWhere("nick_name"), like(nickName))
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.ClientUser
	err := tx.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (r *clientUserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ClientUser{}, id).Error
}

type EndUserRepository interface {
	GetByUserName(ctx context.Context, name string) (*model.EndUser, error)
	GetByID(ctx context.Context, id int64) (*model.EndUser, error)
	Create(ctx context.Context, u *model.EndUser) error
	List(ctx context.Context) ([]*model.EndUser, error)
	Page(ctx context.Context, nickName string, offset, limit int) ([]*model.EndUser, int64, error)
	// Update 更新非零字段，用户名与状态不在此修改
	Update(ctx context.Context, u *model.EndUser) error
	SetStatus(ctx context.Context, id int64, status string) error
}

type endUserRepository struct{ db *gorm.DB }

func NewEndUserRepository(db *gorm.DB) EndUserRepository { return &endUserRepository{db: db} }

func (r *endUserRepository) GetByUserName(ctx context.Context, name string) (*model.EndUser, error) {
	var u model.EndUser
	if err := r.db.WithContext(ctx).Where("user_name = ?", name).First(&u).Error; err != nil {
		return nil, translate(err, "user_name", name)
	}
	return &u, nil
}

func (r *endUserRepository) Create(ctx context.Context, u *model.EndUser) error {
	return translate(r.db.WithContext(ctx).Create(u).Error, "user_name", u.UserName)
}

func (r *endUserRepository) GetByID(ctx context.Context, id int64) (*model.EndUser, error) {
	var u model.EndUser
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "id", fmt.Sprint(id))
	}
	return &u, nil
}

func (r *endUserRepository) List(ctx context.Context) ([]*model.EndUser, error) {
	var res []*model.EndUser
	err := r.db.WithContext(ctx).Order("id DESC").Find(&res).Error
	return res, err
}

func (r *endUserRepository) Page(ctx context.Context, nickName string, offset, limit int) ([]*model.EndUser, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.EndUser{})
	if nickName != "" {
		tx = tx.Where(likeWhere("nick_name"), like(nickName))
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.EndUser
	err := tx.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (r *endUserRepository) Update(ctx context.Context, u *model.EndUser) error {
	res := r.db.WithContext(ctx).Model(&model.EndUser{ID: u.ID}).
		Omit("id", "user_name", "status", "create_time").
		Updates(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *endUserRepository) SetStatus(ctx context.Context, id int64, status string) error {
	res := r.db.WithContext(ctx).Model(&model.EndUser{ID: id}).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
