package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/food-share-server/internal/model"
)

var ErrUnknownRecordType = errors.New("unknown record type")

// RecordRepository 点赞/收藏/浏览记录，记录与推文计数在同一事务内变更
type RecordRepository interface {
	// Add 新增记录；已存在时只刷新时间，返回 created=false 且不改计数
	Add(ctx context.Context, userID, tweetID int64, typ string) (created bool, err error)
	// Touch 浏览：记录不存在则写入，存在则刷新时间；浏览数总是 +1
	Touch(ctx context.Context, userID, tweetID int64, typ string) error
	// Remove 删除用户自己的记录，删除成功才 -1（不低于 0）
	Remove(ctx context.Context, userID, tweetID int64, typ string) (removed bool, err error)
	ListByUserTweet(ctx context.Context, userID, tweetID int64) ([]*model.TweetRecord, error)
	Count(ctx context.Context, userID int64, typ string) (int64, error)
	ListRows(ctx context.Context, userID int64, typ string, offset, limit int) ([]*model.TweetRecordRow, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository { return &recordRepository{db: db} }

func counterColumn(typ string) (string, error) {
	switch typ {
	case model.RecordLike:
		return "like_num", nil
	case model.RecordCollect:
		return "collect_num", nil
	case model.RecordBrowse:
		return "browse_num", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRecordType, typ)
}

func increment(tx *gorm.DB, tweetID int64, col string) error {
	return tx.Model(&model.Tweet{}).Where("id = ?", tweetID).
		UpdateColumn(col, gorm.Expr(col+" + 1")).Error
}

func decrement(tx *gorm.DB, tweetID int64, col string) error {
	return tx.Model(&model.Tweet{}).Where("id = ?", tweetID).
		UpdateColumn(col, gorm.Expr("CASE WHEN "+col+" > 0 THEN "+col+" - 1 ELSE 0 END")).Error
}

func (r *recordRepository) Add(ctx context.Context, userID, tweetID int64, typ string) (bool, error) {
	col, err := counterColumn(typ)
	if err != nil {
		return false, err
	}
	created := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&model.TweetRecord{}).
			Where("client_user_id = ? AND tweets_id = ? AND type = ?", userID, tweetID, typ).
			Update("create_time", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		rec := &model.TweetRecord{ClientUserID: userID, TweetsID: tweetID, Type: typ, CreateTime: now}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rec)
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			// 并发写入的另一条记录已落地
			return nil
		}
		created = true
		return increment(tx, tweetID, col)
	})
	return created, err
}

func (r *recordRepository) Touch(ctx context.Context, userID, tweetID int64, typ string) error {
	col, err := counterColumn(typ)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := &model.TweetRecord{ClientUserID: userID, TweetsID: tweetID, Type: typ, CreateTime: time.Now()}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_user_id"}, {Name: "tweets_id"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"create_time"}),
		}).Create(rec).Error; err != nil {
			return err
		}
		return increment(tx, tweetID, col)
	})
}

func (r *recordRepository) Remove(ctx context.Context, userID, tweetID int64, typ string) (bool, error) {
	col, err := counterColumn(typ)
	if err != nil {
		return false, err
	}
	removed := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("client_user_id = ? AND tweets_id = ? AND type = ?", userID, tweetID, typ).
			Delete(&model.TweetRecord{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return decrement(tx, tweetID, col)
	})
	return removed, err
}

func (r *recordRepository) ListByUserTweet(ctx context.Context, userID, tweetID int64) ([]*model.TweetRecord, error) {
	var res []*model.TweetRecord
	err := r.db.WithContext(ctx).
		Where("client_user_id = ? AND tweets_id = ?", userID, tweetID).
		Find(&res).Error
	return res, err
}

func (r *recordRepository) Count(ctx context.Context, userID int64, typ string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.TweetRecord{}).
		Where("client_user_id = ? AND type = ?", userID, typ).
		Count(&cnt).Error
	return cnt, err
}

func (r *recordRepository) ListRows(ctx context.Context, userID int64, typ string, offset, limit int) ([]*model.TweetRecordRow, error) {
	var rows []*model.TweetRecordRow
	err := r.db.WithContext(ctx).
		Table("tweets_records AS r").
		Select(`r.id AS record_id, r.type, r.create_time AS record_time, t.id AS tweets_id,
			t.tweets_title, t.tweets_img, t.tweets_user, t.like_num`).
		Joins("JOIN tweets t ON t.id = r.tweets_id").
		Where("r.client_user_id = ? AND r.type = ?", userID, typ).
		Order("r.create_time DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}
