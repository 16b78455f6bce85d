package activity

import (
	"context"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type LogFilter struct {
	EntityType string
	Action     string
}

type ActivityRepository struct{}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Create(ctx context.Context, db *gorm.DB, entry *model.ActivityLog) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *ActivityRepository) FindPage(ctx context.Context, db *gorm.DB, filter LogFilter, offset, limit int) ([]model.ActivityLog, int64, error) {
	query := db.WithContext(ctx).Model(&model.ActivityLog{})
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.Action != "" {
		query = query.Where("action_type = ?", filter.Action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.ActivityLog
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
