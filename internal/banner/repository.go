package banner

import (
	"context"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type BannerRepository struct{}

func NewBannerRepository() *BannerRepository {
	return &BannerRepository{}
}

func (r *BannerRepository) FindAll(ctx context.Context, db *gorm.DB, active *bool) ([]model.Banner, error) {
	query := db.WithContext(ctx).Order("sort_order").Order("id")
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}

	var banners []model.Banner
	if err := query.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *BannerRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Banner, error) {
	var banner model.Banner
	err := db.WithContext(ctx).Where("id = ?", id).First(&banner).Error
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *BannerRepository) Create(ctx context.Context, db *gorm.DB, banner *model.Banner) error {
	return db.WithContext(ctx).Create(banner).Error
}

func (r *BannerRepository) Save(ctx context.Context, db *gorm.DB, banner *model.Banner) error {
	return db.WithContext(ctx).Save(banner).Error
}

func (r *BannerRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.Banner{}, id).Error
}
