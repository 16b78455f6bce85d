package content

import (
	"context"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type ContentRepository struct{}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{}
}

func (r *ContentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Content, error) {
	var contents []model.Content
	if err := db.WithContext(ctx).Order("content_key").Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *ContentRepository) FindByKey(ctx context.Context, db *gorm.DB, key string) (*model.Content, error) {
	var content model.Content
	err := db.WithContext(ctx).Where("content_key = ?", key).First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *ContentRepository) Create(ctx context.Context, db *gorm.DB, content *model.Content) error {
	return db.WithContext(ctx).Create(content).Error
}

func (r *ContentRepository) Save(ctx context.Context, db *gorm.DB, content *model.Content) error {
	return db.WithContext(ctx).Save(content).Error
}

func (r *ContentRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.Content{}, id).Error
}
