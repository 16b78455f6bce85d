package spot

import (
	"context"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"gorm.io/gorm"
)

type SpotFilter struct {
	Region string
	Q      string
}

type SpotRepository struct{}

func NewSpotRepository() *SpotRepository {
	return &SpotRepository{}
}

func (r *SpotRepository) FindAll(ctx context.Context, db *gorm.DB, filter SpotFilter) ([]model.Spot, error) {
	query := db.WithContext(ctx).Order("name_ko").Order("id")
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.Q != "" {
		nameKo, pattern := database.LikeContains("name_ko", filter.Q)
		nameEn, _ := database.LikeContains("name_en", filter.Q)
		query = query.Where(nameKo+" OR "+nameEn, pattern, pattern)
	}

	var spots []model.Spot
	if err := query.Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *SpotRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Spot, error) {
	var spot model.Spot
	err := db.WithContext(ctx).Where("id = ?", id).First(&spot).Error
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *SpotRepository) Create(ctx context.Context, db *gorm.DB, spot *model.Spot) error {
	return db.WithContext(ctx).Create(spot).Error
}

func (r *SpotRepository) Save(ctx context.Context, db *gorm.DB, spot *model.Spot) error {
	return db.WithContext(ctx).Save(spot).Error
}

func (r *SpotRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.Spot{}, id).Error
}
