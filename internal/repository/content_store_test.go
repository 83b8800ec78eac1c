package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/testutil"
)

func TestSplitTypeIDs(t *testing.T) {
	assert.Nil(t, SplitTypeIDs(""))
	assert.Nil(t, SplitTypeIDs("  "))
	assert.Equal(t, []int64{3, 11, 5}, SplitTypeIDs("3, 11,x,,5"))
}

func TestContentStore_LikedTypeIDs(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewContentStore(db)
	a := testutil.SeedTweet(t, db, "a", 1, 2, 3)
	b := testutil.SeedTweet(t, db, "b", 1, 3, 4)
	c := testutil.SeedTweet(t, db, "c", 9)
	testutil.SeedLike(t, db, 5, a.ID)
	testutil.SeedLike(t, db, 5, b.ID)
	testutil.SeedLike(t, db, 6, c.ID)

	ids, err := store.LikedTypeIDs(context.Background(), 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4}, ids)

	ids, err = store.LikedTypeIDs(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestContentStore_TweetsByTypeIDsMatchesWholeIDs(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewContentStore(db)
	hit := testutil.SeedTweet(t, db, "hit", 9, 1, 12)
	parent := testutil.SeedTweet(t, db, "parent", 12)
	testutil.SeedTweet(t, db, "miss", 9, 112, 121)

	res, err := store.TweetsByTypeIDs(context.Background(), []int64{12})
	require.NoError(t, err)
	got := make([]int64, len(res))
	for i, tw := range res {
		got[i] = tw.ID
	}
	assert.ElementsMatch(t, []int64{hit.ID, parent.ID}, got)

	res, err = store.TweetsByTypeIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestContentStore_TypeIDsByKeyword(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewContentStore(db)
	noodles := testutil.SeedType(t, db, "面食", 0)
	ramen := testutil.SeedType(t, db, "日式拉面", noodles)
	testutil.SeedType(t, db, "甜品", 0)

	ids, err := store.TypeIDsByKeyword(context.Background(), "拉面")
	require.NoError(t, err)
	assert.Equal(t, []int64{ramen}, ids)

	ids, err = store.TypeIDsByKeyword(context.Background(), "火锅")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestContentStore_RandomTweetsExcludes(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewContentStore(db)
	a := testutil.SeedTweet(t, db, "a", 0)
	b := testutil.SeedTweet(t, db, "b", 0)

	res, err := store.RandomTweets(context.Background(), 10, []int64{a.ID})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, b.ID, res[0].ID)

	res, err = store.RandomTweets(context.Background(), 10, []int64{a.ID, b.ID})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestTweetRepository_CountUsingType(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTweetRepository(db)
	testutil.SeedTweet(t, db, "a", 1, 21)
	testutil.SeedTweet(t, db, "b", 3, 2)

	for id, want := range map[int64]int64{1: 1, 2: 1, 21: 1, 3: 1, 4: 0} {
		n, err := repo.CountUsingType(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, want, n, "type %d", id)
	}
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, "f", "v"))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound, "f", "v"), ErrNotFound)

	var dup *DuplicateError
	require.True(t, errors.As(translate(gorm.ErrDuplicatedKey, "dict_name", "banner"), &dup))
	assert.Equal(t, "dict_name", dup.Field)
	assert.Equal(t, "duplicate dict_name: banner", dup.Error())

	other := errors.New("boom")
	assert.Equal(t, other, translate(other, "f", "v"))
}

func TestDictRepository_Duplicate(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewDictRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.SysDict{DictName: "k", DictValue: "1"}))
	err := repo.Save(ctx, &model.SysDict{DictName: "k", DictValue: "2"})
	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "k", dup.Value)
}
