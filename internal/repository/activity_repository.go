package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
)

type ActivityRepository interface {
	List(ctx context.Context, actType string, offset, limit int) ([]*model.Activity, int64, error)
	GetByID(ctx context.Context, id int64) (*model.Activity, error)
	Save(ctx context.Context, a *model.Activity) error
	Delete(ctx context.Context, id int64) error

	// Join 重复参与返回 *DuplicateError
	Join(ctx context.Context, actID, userID int64) error
	IsJoined(ctx context.Context, actID, userID int64) (bool, error)
	JoinedIDs(ctx context.Context, userID int64) ([]int64, error)
	Joined(ctx context.Context, userID int64) ([]*model.Activity, error)

	AddMessage(ctx context.Context, userID int64, content string) error
	Messages(ctx context.Context, userID int64) ([]*model.ClientMessage, error)
}

type activityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) ActivityRepository { return &activityRepository{db: db} }

func (r *activityRepository) List(ctx context.Context, actType string, offset, limit int) ([]*model.Activity, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Activity{})
	if actType != "" {
		tx = tx.Where("act_type = ?", actType)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Activity
	err := tx.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (r *activityRepository) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	var a model.Activity
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, translate(err, "id", fmt.Sprint(id))
	}
	return &a, nil
}

func (r *activityRepository) Save(ctx context.Context, a *model.Activity) error {
	return save(r.db.WithContext(ctx), a, a.ID)
}

func (r *activityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("act_id = ?", id).Delete(&model.ActivityJoin{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Activity{}, id).Error
	})
}

func (r *activityRepository) Join(ctx context.Context, actID, userID int64) error {
	j := &model.ActivityJoin{ActID: actID, ClientUserID: userID}
	return translate(r.db.WithContext(ctx).Create(j).Error, "act_id", fmt.Sprint(actID))
}

func (r *activityRepository) IsJoined(ctx context.Context, actID, userID int64) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.ActivityJoin{}).
		Where("act_id = ? AND client_user_id = ?", actID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *activityRepository) JoinedIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.ActivityJoin{}).
		Where("client_user_id = ?", userID).
		Order("create_time DESC").
		Pluck("act_id", &ids).Error
	return ids, err
}

func (r *activityRepository) Joined(ctx context.Context, userID int64) ([]*model.Activity, error) {
	var res []*model.Activity
	err := r.db.WithContext(ctx).
		Select("activity.*").
		Joins("JOIN activity_join j ON j.act_id = activity.id").
		Where("j.client_user_id = ?", userID).
		Order("j.create_time DESC").
		Find(&res).Error
	return res, err
}

func (r *activityRepository) AddMessage(ctx context.Context, userID int64, content string) error {
	return r.db.WithContext(ctx).Create(&model.ClientMessage{ClientUserID: userID, Content: content}).Error
}

func (r *activityRepository) Messages(ctx context.Context, userID int64) ([]*model.ClientMessage, error) {
	var res []*model.ClientMessage
	err := r.db.WithContext(ctx).Where("client_user_id = ?", userID).Order("id DESC").Find(&res).Error
	return res, err
}
