package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/testutil"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/validator"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	require.NoError(t, validator.RegisterAll())
	ctx := context.Background()

	t.Run("first admin", func(t *testing.T) {
		// Given
		db := testutil.SetupTestDB(t)
		request := &user.CreateUserRequest{Name: "운영자", Email: "ops@tour.test", Password: "change-me-now", Role: model.RoleAdmin}

		// When
		id, err := createUser(ctx, db, request)

		// Then
		require.NoError(t, err)
		var stored model.User
		require.NoError(t, db.First(&stored, id).Error)
		assert.Equal(t, model.RoleAdmin, stored.Role)
		assert.True(t, user.CheckPassword(stored.Password, "change-me-now"))
	})

	t.Run("invalid flags are rejected before touching the database", func(t *testing.T) {
		// Given
		db := testutil.SetupTestDB(t)
		request := &user.CreateUserRequest{Name: "운영자", Email: "not-an-email", Password: "short", Role: "root"}

		// When
		_, err := createUser(ctx, db, request)

		// Then
		require.Error(t, err)
		var count int64
		require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("duplicate email", func(t *testing.T) {
		// Given
		db := testutil.SetupTestDB(t)
		request := &user.CreateUserRequest{Name: "운영자", Email: "ops@tour.test", Password: "change-me-now", Role: model.RoleEditor}
		_, err := createUser(ctx, db, request)
		require.NoError(t, err)

		// When
		_, err = createUser(ctx, db, request)

		// Then
		assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
	})
}

const fixtures = `
spots:
  - name: {ko: 경복궁, en: Gyeongbokgung Palace}
    region: seoul
    latitude: 37.5796
    longitude: 126.9770
products:
  - title: {ko: 서울 궁궐 투어, en: Seoul Palace Tour}
    price: 89000
    currency: KRW
    durationDays: 1
    schedule:
      - day: 1
        title: {ko: 경복궁 관람}
contents:
  - key: about
    title: {ko: 회사 소개, en: About us}
    body: {ko: "# 안녕하세요"}
`

func TestSeed(t *testing.T) {
	require.NoError(t, validator.RegisterAll())
	ctx := context.Background()

	t.Run("fresh database", func(t *testing.T) {
		// Given
		db := testutil.SetupTestDB(t)

		// When
		result, err := seed(ctx, db, testutil.NewMemoryStorage(), strings.NewReader(fixtures))

		// Then
		require.NoError(t, err)
		assert.Equal(t, seedResult{Spots: 1, Products: 1, Contents: 1}, result)

		var product model.Product
		require.NoError(t, db.Preload("Schedule").First(&product).Error)
		assert.Equal(t, "Seoul Palace Tour", product.Title.En)
		assert.Equal(t, int64(89000), product.Price)
	})

	t.Run("second run only upserts contents", func(t *testing.T) {
		// Given
		db := testutil.SetupTestDB(t)
		_, err := seed(ctx, db, testutil.NewMemoryStorage(), strings.NewReader(fixtures))
		require.NoError(t, err)

		// When
		result, err := seed(ctx, db, testutil.NewMemoryStorage(), strings.NewReader(fixtures))

		// Then
		require.NoError(t, err)
		assert.Equal(t, seedResult{Contents: 1}, result)
		var spots int64
		require.NoError(t, db.Model(&model.Spot{}).Count(&spots).Error)
		assert.Equal(t, int64(1), spots)
	})

	t.Run("invalid entry names its position", func(t *testing.T) {
		// Given
		db := testutil.SetupTestDB(t)
		broken := "spots:\n  - region: seoul\n"

		// When
		_, err := seed(ctx, db, testutil.NewMemoryStorage(), strings.NewReader(broken))

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spots[0]")
	})
}

func TestCleanupGenerated(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	newFiles := func() *testutil.MemoryStorage {
		files := testutil.NewMemoryStorage()
		files.PutAt("generated/old-1.png", []byte("a"), now.Add(-48*time.Hour))
		files.PutAt("generated/old-2.png", []byte("b"), now.Add(-25*time.Hour))
		files.PutAt("generated/fresh.png", []byte("c"), now.Add(-time.Hour))
		files.PutAt("posters/keep.png", []byte("d"), now.Add(-72*time.Hour))
		return files
	}

	t.Run("deletes only stale generated files", func(t *testing.T) {
		// Given
		files := newFiles()

		// When
		result, err := cleanupGenerated(ctx, files, "generated/", 24*time.Hour, now, false)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 3, result.Scanned)
		assert.Equal(t, 2, result.Deleted)
		assert.Empty(t, result.Failed)
		assert.ElementsMatch(t, []string{"generated/fresh.png", "posters/keep.png"}, files.Paths())
	})

	t.Run("dry run keeps everything", func(t *testing.T) {
		// Given
		files := newFiles()

		// When
		result, err := cleanupGenerated(ctx, files, "generated/", 24*time.Hour, now, true)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 2, result.Stale)
		assert.Equal(t, int64(2), result.StaleBytes)
		assert.Zero(t, result.Deleted)
		assert.Len(t, files.Paths(), 4)
	})

	t.Run("delete failures are reported", func(t *testing.T) {
		// Given
		files := newFiles()
		files.FailDelete["generated/old-1.png"] = true

		// When
		result, err := cleanupGenerated(ctx, files, "generated/", 24*time.Hour, now, false)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []string{"generated/old-1.png"}, result.Failed)
		assert.Equal(t, 1, result.Deleted)
	})

	t.Run("refuses prefixes outside generated", func(t *testing.T) {
		// When
		_, err := cleanupGenerated(ctx, newFiles(), "posters/", time.Hour, now, false)

		// Then
		require.Error(t, err)
	})
}
