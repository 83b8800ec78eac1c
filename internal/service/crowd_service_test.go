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

func TestCrowdService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCrowdService(repository.NewCrowdRepository(db))
	ctx := context.Background()

	for _, c := range []*model.Crowd{
		{Title: "健身人群", Describe: "高蛋白"},
		{Title: "减脂人群", Describe: "低脂 100%"},
		{Title: "学生党", Describe: "便宜"},
	} {
		require.NoError(t, svc.Save(ctx, c))
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "学生党", list[0].Title)

	page, err := svc.Page(ctx, CrowdPageQuery{Page: 1, PageSize: 10, Title: "人群"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, "减脂人群", page.List.([]*model.Crowd)[0].Title)

	page, err = svc.Page(ctx, CrowdPageQuery{Title: "人群", Describe: "低脂"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	// 通配符按字面匹配
	page, err = svc.Page(ctx, CrowdPageQuery{Describe: "%"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	page, err = svc.Page(ctx, CrowdPageQuery{Title: "_"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)

	c := list[0]
	require.NoError(t, svc.Save(ctx, &model.Crowd{ID: c.ID, Img: "x.png"}))
	var got model.Crowd
	require.NoError(t, db.First(&got, c.ID).Error)
	assert.Equal(t, "学生党", got.Title)
	assert.Equal(t, "x.png", got.Img)

	assert.ErrorIs(t, svc.Save(ctx, &model.Crowd{ID: 999, Title: "x"}), ErrCrowdNotFound)

	require.NoError(t, svc.Delete(ctx, c.ID))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
