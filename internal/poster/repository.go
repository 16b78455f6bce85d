package poster

import (
	"context"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type PosterRepository struct{}

func NewPosterRepository() *PosterRepository {
	return &PosterRepository{}
}

func (r *PosterRepository) FindAll(ctx context.Context, db *gorm.DB, active *bool) ([]model.Poster, error) {
	query := db.WithContext(ctx).Order("sort_order").Order("id")
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}

	var posters []model.Poster
	if err := query.Find(&posters).Error; err != nil {
		return nil, err
	}
	return posters, nil
}

func (r *PosterRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Poster, error) {
	var poster model.Poster
	err := db.WithContext(ctx).Where("id = ?", id).First(&poster).Error
	if err != nil {
		return nil, err
	}
	return &poster, nil
}

func (r *PosterRepository) Create(ctx context.Context, db *gorm.DB, poster *model.Poster) error {
	return db.WithContext(ctx).Create(poster).Error
}

func (r *PosterRepository) Save(ctx context.Context, db *gorm.DB, poster *model.Poster) error {
	return db.WithContext(ctx).Save(poster).Error
}

func (r *PosterRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.Poster{}, id).Error
}
