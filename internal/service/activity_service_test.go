package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/internal/testutil"
)

func TestActivityService_Join(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewActivityService(repository.NewActivityRepository(db))
	ctx := context.Background()

	act := &model.Activity{Title: "周末烘焙课", Type: "offline"}
	require.NoError(t, svc.Save(ctx, act))

	require.NoError(t, svc.Join(ctx, JoinInput{UserID: 1, ActivityID: act.ID, GetMsg: true}))
	assert.ErrorIs(t, svc.Join(ctx, JoinInput{UserID: 1, ActivityID: act.ID, GetMsg: true}), ErrAlreadyJoined)
	require.NoError(t, svc.Join(ctx, JoinInput{UserID: 2, ActivityID: act.ID}))
	assert.ErrorIs(t, svc.Join(ctx, JoinInput{UserID: 1, ActivityID: 999}), ErrActivityNotFound)

	msgs, err := svc.Messages(ctx, 1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "参与了活动 - [周末烘焙课]", msgs[0].Content)

	msgs, err = svc.Messages(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	ids, err := svc.JoinedIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{act.ID}, ids)

	joined, err := svc.Joined(ctx, 1)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, act.ID, joined[0].ID)
	assert.Equal(t, "周末烘焙课", joined[0].Title)
}

func TestActivityService_PageAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewActivityService(repository.NewActivityRepository(db))
	ctx := context.Background()

	for _, typ := range []string{"online", "offline", "online"} {
		require.NoError(t, svc.Save(ctx, &model.Activity{Title: typ, Type: typ}))
	}
	page, err := svc.Page(ctx, "online", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	page, err = svc.Page(ctx, "", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	assert.EqualValues(t, 2, page.Pages)

	acts := page.List.([]*model.Activity)
	require.NoError(t, svc.Join(ctx, JoinInput{UserID: 1, ActivityID: acts[0].ID}))
	require.NoError(t, svc.Delete(ctx, acts[0].ID))
	ids, err := svc.JoinedIDs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, svc.Save(ctx, &model.Activity{ID: 999, Title: "x"}), ErrActivityNotFound)
}
