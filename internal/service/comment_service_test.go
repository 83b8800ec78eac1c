package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/internal/testutil"
	"github.com/d60-Lab/food-share-server/internal/wechat"
)

func TestCommentService(t *testing.T) {
	db := testutil.NewDB(t)
	wx := &fakeWeChat{suggest: wechat.SuggestPass}
	svc := NewCommentService(repository.NewCommentRepository(db), repository.NewTweetRepository(db), wx)
	ctx := context.Background()

	user := &model.ClientUser{OpenID: "o1", NickName: "小厨", Avatar: "a.png"}
	require.NoError(t, db.Create(user).Error)
	tw := testutil.SeedTweet(t, db, "t", 0)

	assert.ErrorIs(t, svc.Post(ctx, CommentInput{UserID: user.ID, TweetID: tw.ID, Content: "  "}), ErrEmptyComment)
	assert.ErrorIs(t, svc.Post(ctx, CommentInput{UserID: user.ID, TweetID: 999, Content: "hi"}), ErrTweetNotFound)

	require.NoError(t, svc.Post(ctx, CommentInput{UserID: user.ID, TweetID: tw.ID, Content: "好吃", OpenID: "o1"}))
	// 没有 openid 时不做检测
	require.NoError(t, svc.Post(ctx, CommentInput{UserID: user.ID, TweetID: tw.ID, Content: "再来"}))
	assert.Equal(t, []string{"好吃"}, wx.checked)

	wx.suggest = wechat.SuggestRisky
	assert.ErrorIs(t, svc.Post(ctx, CommentInput{UserID: user.ID, TweetID: tw.ID, Content: "bad", OpenID: "o1"}), ErrContentRisky)

	// 检测接口故障时放行
	wx.checkErr = errors.New("timeout")
	require.NoError(t, svc.Post(ctx, CommentInput{UserID: user.ID, TweetID: tw.ID, Content: "第三条", OpenID: "o1"}))

	list, err := svc.List(ctx, tw.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.NotNil(t, list[0].User)
	assert.Equal(t, "小厨", list[0].User.NickName)
	assert.Empty(t, list[0].User.OpenID)
}

func TestDictService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewDictService(repository.NewDictRepository(db))
	ctx := context.Background()

	d := &model.SysDict{DictName: "banner", DictValue: "[]"}
	require.NoError(t, svc.Save(ctx, d))
	err := svc.Save(ctx, &model.SysDict{DictName: "banner"})
	var dup *repository.DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "banner", dup.Value)

	d.DictValue = `["a.png"]`
	require.NoError(t, svc.Save(ctx, d))
	got, err := svc.Get(ctx, "banner")
	require.NoError(t, err)
	assert.Equal(t, `["a.png"]`, got.DictValue)

	require.NoError(t, svc.Delete(ctx, d.ID))
	_, err = svc.Get(ctx, "banner")
	assert.ErrorIs(t, err, ErrDictNotFound)
}
