package settings

import (
	"context"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type SettingsRepository struct{}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// FindOrCreate loads the singleton row, inserting the defaults when the table is empty
func (r *SettingsRepository) FindOrCreate(ctx context.Context, db *gorm.DB) (*model.SiteSettings, error) {
	settings := model.DefaultSiteSettings()
	err := db.WithContext(ctx).
		Where("id = ?", model.SiteSettingsID).
		FirstOrCreate(settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, db *gorm.DB, settings *model.SiteSettings) error {
	return db.WithContext(ctx).Save(settings).Error
}
