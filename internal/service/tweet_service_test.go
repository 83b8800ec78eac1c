package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/food-share-server/internal/auth"
	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/internal/testutil"
)

func TestTweetService_SaveDetailPage(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTweetService(repository.NewTweetRepository(db), repository.NewTweetTypeRepository(db), nil)
	pid := testutil.SeedType(t, db, "面食", 0)
	c1 := testutil.SeedType(t, db, "拉面", pid)
	c2 := testutil.SeedType(t, db, "饺子", pid)
	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: 3, Name: "admin", Kind: auth.KindAdmin})

	tw := &model.Tweet{Title: "兰州拉面", TypePID: pid, TypeCIDs: fmtID(c1) + "," + fmtID(c2)}
	require.NoError(t, svc.Save(ctx, tw))
	require.NotZero(t, tw.ID)
	assert.Equal(t, "admin", tw.CreateUser)

	view, err := svc.Detail(ctx, tw.ID)
	require.NoError(t, err)
	assert.Equal(t, "面食", view.TypePidName)
	assert.Equal(t, []string{"拉面", "饺子"}, view.TypeCidNames)

	// 更新不覆盖计数与创建时间
	require.NoError(t, db.Model(&model.Tweet{}).Where("id = ?", tw.ID).Update("like_num", 4).Error)
	created := loadTweet(t, db, tw.ID).CreateTime
	require.NoError(t, svc.Save(ctx, &model.Tweet{ID: tw.ID, Title: "牛肉面", TypePID: pid}))
	got := loadTweet(t, db, tw.ID)
	assert.Equal(t, "牛肉面", got.Title)
	assert.EqualValues(t, 4, got.LikeNum)
	assert.True(t, created.Equal(got.CreateTime))

	assert.ErrorIs(t, svc.Save(ctx, &model.Tweet{ID: 999, Title: "x"}), ErrTweetNotFound)
	_, err = svc.Detail(ctx, 999)
	assert.ErrorIs(t, err, ErrTweetNotFound)

	testutil.SeedTweet(t, db, "其他", 0)
	page, err := svc.Page(ctx, TweetPageQuery{Page: 1, PageSize: 10, TypePID: &pid, OrderBy: repository.OrderHot})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	require.NoError(t, svc.Delete(ctx, tw.ID))
	_, err = svc.Detail(ctx, tw.ID)
	assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestTweetService_ListByIDsKeepsOrder(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTweetService(repository.NewTweetRepository(db), repository.NewTweetTypeRepository(db), nil)
	a := testutil.SeedTweet(t, db, "a", 0)
	b := testutil.SeedTweet(t, db, "b", 0)

	got, err := svc.ListByIDs(context.Background(), []int64{b.ID, a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
}

func TestTweetTypeService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTweetTypeService(repository.NewTweetTypeRepository(db), repository.NewTweetRepository(db))
	ctx := context.Background()

	root := &model.TweetType{Name: "面食"}
	require.NoError(t, svc.Save(ctx, root))
	child := &model.TweetType{Name: "拉面", ParentID: &root.ID}
	require.NoError(t, svc.Save(ctx, child))
	other := &model.TweetType{Name: "炒饭", ParentID: &root.ID}
	require.NoError(t, svc.Save(ctx, other))
	zero := int64(0)
	lone := &model.TweetType{Name: "甜品", ParentID: &zero}
	require.NoError(t, svc.Save(ctx, lone))

	tree, err := svc.Tree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "面食", tree[0].Name)
	assert.Len(t, tree[0].Children, 2)
	assert.Empty(t, tree[1].Children)

	testutil.SeedTweet(t, db, "兰州拉面", root.ID, child.ID)
	assert.ErrorIs(t, svc.Delete(ctx, root.ID), ErrTweetTypeInUse)
	assert.ErrorIs(t, svc.Delete(ctx, child.ID), ErrTweetTypeInUse)
	assert.NoError(t, svc.Delete(ctx, other.ID))
	assert.ErrorIs(t, svc.Delete(ctx, other.ID), ErrTweetTypeNotFound)
}

type countingInvalidator struct {
	calls int
	err   error
}

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return c.err
}

func TestTweetService_WritesInvalidatePopular(t *testing.T) {
	db := testutil.NewDB(t)
	popular := &countingInvalidator{}
	svc := NewTweetService(repository.NewTweetRepository(db), repository.NewTweetTypeRepository(db), popular)
	ctx := context.Background()

	tw := &model.Tweet{Title: "兰州拉面"}
	require.NoError(t, svc.Save(ctx, tw))
	assert.Equal(t, 1, popular.calls)

	tw.Title = "牛肉面"
	require.NoError(t, svc.Save(ctx, tw))
	assert.Equal(t, 2, popular.calls)

	assert.ErrorIs(t, svc.Save(ctx, &model.Tweet{ID: 999, Title: "x"}), ErrTweetNotFound)
	assert.Equal(t, 2, popular.calls)

	// 缓存清理失败不影响删除结果
	popular.err = errors.New("redis down")
	require.NoError(t, svc.Delete(ctx, tw.ID))
	assert.Equal(t, 3, popular.calls)
}
