package database_test

import (
	"testing"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	t.Run("disabled leaves data alone", func(t *testing.T) {
		// Given
		db := testutil.SetupTestDB(t)
		seedBanners(t, db, 2)
		cfg := testutil.NewTestConfig()
		cfg.Database.IsAutoMigrate = false

		// When
		require.NoError(t, database.Migrate(db, cfg))

		// Then
		var count int64
		require.NoError(t, db.Model(&model.Banner{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("enabled recreates empty tables", func(t *testing.T) {
		// Given
		db := testutil.SetupTestDB(t)
		seedBanners(t, db, 2)
		cfg := testutil.NewTestConfig()
		cfg.Database.IsAutoMigrate = true

		// When
		require.NoError(t, database.Migrate(db, cfg))

		// Then
		for _, table := range model.TableNames() {
			assert.True(t, db.Migrator().HasTable(table), table)
		}
		var count int64
		require.NoError(t, db.Model(&model.Banner{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("blocked in production", func(t *testing.T) {
		// Given
		db := testutil.SetupTestDB(t)
		seedBanners(t, db, 1)
		cfg := testutil.NewTestConfig()
		cfg.App.Env = "prod"
		cfg.Database.IsAutoMigrate = true

		// When
		err := database.Migrate(db, cfg)

		// Then
		assert.ErrorIs(t, err, database.ErrMigrateInProduction)
		var count int64
		require.NoError(t, db.Model(&model.Banner{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
