// Package testutil 提供测试用的 sqlite 内存库与种子数据
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/pkg/database"
)

// NewDB 返回已迁移全部模型的内存库。单连接，保证同一测试看到同一个库
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		tb.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db, model.All()...); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

// SeedType 写入一个类目，parent 为 0 表示一级类目
func SeedType(tb testing.TB, db *gorm.DB, name string, parent int64) int64 {
	tb.Helper()
	t := &model.TweetType{Name: name}
	if parent > 0 {
		t.ParentID = &parent
	}
	if err := db.Create(t).Error; err != nil {
		tb.Fatalf("seed type: %v", err)
	}
	return t.ID
}

// SeedTweet 写入一条推文，children 为二级类目 id
func SeedTweet(tb testing.TB, db *gorm.DB, title string, pid int64, children ...int64) *model.Tweet {
	tb.Helper()
	cids := make([]string, len(children))
	for i, c := range children {
		cids[i] = fmt.Sprint(c)
	}
	t := &model.Tweet{Title: title, TypePID: pid, TypeCIDs: strings.Join(cids, ",")}
	if err := db.Create(t).Error; err != nil {
		tb.Fatalf("seed tweet: %v", err)
	}
	return t
}

// SeedLike 直接写入一条点赞记录（不改计数）
func SeedLike(tb testing.TB, db *gorm.DB, userID, tweetID int64) {
	tb.Helper()
	rec := &model.TweetRecord{ClientUserID: userID, TweetsID: tweetID, Type: model.RecordLike}
	if err := db.WithContext(context.Background()).Create(rec).Error; err != nil {
		tb.Fatalf("seed like: %v", err)
	}
}
