package database_test

import (
	"context"
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBanners(t *testing.T, db *gorm.DB, n int) []uint32 {
	t.Helper()
	ids := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		banner := &model.Banner{Title: model.LocalizedText{Ko: "배너"}, SortOrder: i, IsActive: true}
		require.NoError(t, db.Create(banner).Error)
		ids = append(ids, banner.ID)
	}
	return ids
}

func TestNextSortOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	// Given: empty table
	next, err := database.NextSortOrder(ctx, db, &model.Banner{})
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	// Given: three rows at 0..2
	seedBanners(t, db, 3)
	next, err = database.NextSortOrder(ctx, db, &model.Banner{})
	require.NoError(t, err)
	assert.Equal(t, 3, next)
}

func TestReorder_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	ids := seedBanners(t, db, 3)

	// When: reverse the order
	reversed := []uint32{ids[2], ids[1], ids[0]}
	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
		return database.Reorder(ctx, tx, &model.Banner{}, reversed)
	})
	require.NoError(t, err)

	// Then: sort_order equals the request index
	var banners []model.Banner
	require.NoError(t, db.Order("sort_order").Find(&banners).Error)
	require.Len(t, banners, 3)
	for i, b := range banners {
		assert.Equal(t, reversed[i], b.ID)
		assert.Equal(t, i, b.SortOrder)
	}
}

func TestReorder_Mismatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	ids := seedBanners(t, db, 3)

	testCases := []struct {
		name string
		ids  []uint32
	}{
		{name: "missing id", ids: []uint32{ids[0], ids[1]}},
		{name: "unknown id", ids: []uint32{ids[0], ids[1], 9999}},
		{name: "duplicate id", ids: []uint32{ids[0], ids[0], ids[1]}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := database.Reorder(ctx, db, &model.Banner{}, tc.ids)
			assert.ErrorIs(t, err, database.ErrOrderMismatch)
		})
	}
}

func TestReorder_NormalisesDuplicatePositions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	// Given: two rows that were appended concurrently and share sort_order 1
	ids := seedBanners(t, db, 3)
	require.NoError(t, db.Model(&model.Banner{}).Where("id = ?", ids[2]).Update("sort_order", 1).Error)

	// When
	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
		return database.Reorder(ctx, tx, &model.Banner{}, []uint32{ids[2], ids[1], ids[0]})
	})

	// Then
	require.NoError(t, err)
	var banners []model.Banner
	require.NoError(t, db.Order("sort_order").Find(&banners).Error)
	require.Len(t, banners, 3)
	for position, b := range banners {
		assert.Equal(t, position, b.SortOrder)
	}
	assert.Equal(t, []uint32{ids[2], ids[1], ids[0]}, []uint32{banners[0].ID, banners[1].ID, banners[2].ID})
}
