package repository

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/testutil"
)

func tweetCounters(t testing.TB, repo TweetRepository, id int64) (like, collect, browse int64) {
	tw, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return tw.LikeNum, tw.CollectNum, tw.BrowseNum
}

func TestRecordRepository_AddRefreshesExisting(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecordRepository(db)
	tweets := NewTweetRepository(db)
	tw := testutil.SeedTweet(t, db, "t", 0)
	ctx := context.Background()

	created, err := repo.Add(ctx, 1, tw.ID, model.RecordLike)
	require.NoError(t, err)
	assert.True(t, created)
	first, err := repo.ListByUserTweet(ctx, 1, tw.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	created, err = repo.Add(ctx, 1, tw.ID, model.RecordLike)
	require.NoError(t, err)
	assert.False(t, created)
	second, err := repo.ListByUserTweet(ctx, 1, tw.ID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.False(t, second[0].CreateTime.Before(first[0].CreateTime))

	like, _, _ := tweetCounters(t, tweets, tw.ID)
	assert.EqualValues(t, 1, like)
}

func TestRecordRepository_RemoveClampsAtZero(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecordRepository(db)
	tweets := NewTweetRepository(db)
	tw := testutil.SeedTweet(t, db, "t", 0)
	ctx := context.Background()

	// 计数与记录不一致时也不会减成负数
	testutil.SeedLike(t, db, 1, tw.ID)
	removed, err := repo.Remove(ctx, 1, tw.ID, model.RecordLike)
	require.NoError(t, err)
	assert.True(t, removed)
	like, _, _ := tweetCounters(t, tweets, tw.ID)
	assert.Zero(t, like)

	removed, err = repo.Remove(ctx, 1, tw.ID, model.RecordLike)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRecordRepository_TouchAlwaysIncrements(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecordRepository(db)
	tweets := NewTweetRepository(db)
	tw := testutil.SeedTweet(t, db, "t", 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Touch(ctx, 7, tw.ID, model.RecordBrowse))
	}
	_, _, browse := tweetCounters(t, tweets, tw.ID)
	assert.EqualValues(t, 3, browse)

	n, err := repo.Count(ctx, 7, model.RecordBrowse)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRecordRepository_UnknownType(t *testing.T) {
	repo := NewRecordRepository(testutil.NewDB(t))
	_, err := repo.Add(context.Background(), 1, 1, "share")
	assert.ErrorIs(t, err, ErrUnknownRecordType)
}

func TestRecordRepository_ListRows(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()
	a := testutil.SeedTweet(t, db, "a", 0)
	b := testutil.SeedTweet(t, db, "b", 0)

	_, err := repo.Add(ctx, 1, a.ID, model.RecordCollect)
	require.NoError(t, err)
	_, err = repo.Add(ctx, 1, b.ID, model.RecordCollect)
	require.NoError(t, err)
	_, err = repo.Add(ctx, 2, a.ID, model.RecordCollect)
	require.NoError(t, err)

	rows, err := repo.ListRows(ctx, 1, model.RecordCollect, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, b.ID, rows[0].TweetsID, "newest first")
	assert.Equal(t, "b", rows[0].TweetsTitle)
	assert.Equal(t, model.RecordCollect, rows[0].Type)
	assert.NotZero(t, rows[0].RecordID)
}

func BenchmarkLikeToggle(b *testing.B) {
	db := testutil.NewDB(b)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	tweets := make([]int64, 200)
	for i := range tweets {
		tweets[i] = testutil.SeedTweet(b, db, fmt.Sprintf("t%d", i), 0).ID
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		user := rand.Int64N(1000) + 1
		tweet := tweets[rand.IntN(len(tweets))]
		if i%2 == 0 {
			_, _ = repo.Add(ctx, user, tweet, model.RecordLike)
		} else {
			_, _ = repo.Remove(ctx, user, tweet, model.RecordLike)
		}
	}
}

func BenchmarkListRecords(b *testing.B) {
	db := testutil.NewDB(b)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	// 一个用户收藏了 N 条推文
	const N = 2000
	for i := 0; i < N; i++ {
		tw := testutil.SeedTweet(b, db, fmt.Sprintf("t%d", i), 0)
		_, _ = repo.Add(ctx, 1, tw.ID, model.RecordCollect)
	}

	b.ResetTimer()
	b.Run("Count", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.Count(ctx, 1, model.RecordCollect)
		}
	})
	b.Run("ListRows", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.ListRows(ctx, 1, model.RecordCollect, 0, 50)
		}
	})
}
