package booking

import (
	"context"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"gorm.io/gorm"
)

type BookingFilter struct {
	Status    string
	ProductID uint32
	From      *time.Time
	To        *time.Time // exclusive
}

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) FindPage(ctx context.Context, db *gorm.DB, filter BookingFilter, offset, limit int) ([]model.Booking, int64, error) {
	query := db.WithContext(ctx).Model(&model.Booking{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.From != nil {
		query = query.Where("travel_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("travel_date < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []model.Booking
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Booking, error) {
	var booking model.Booking
	err := db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) Create(ctx context.Context, db *gorm.DB, booking *model.Booking) error {
	return db.WithContext(ctx).Create(booking).Error
}

func (r *BookingRepository) Save(ctx context.Context, db *gorm.DB, booking *model.Booking) error {
	return db.WithContext(ctx).Save(booking).Error
}

func (r *BookingRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.Booking{}, id).Error
}
