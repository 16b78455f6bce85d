package product

import (
	"context"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductFilter struct {
	Region   string
	Category string
	Active   *bool
}

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) FindAll(ctx context.Context, db *gorm.DB, filter ProductFilter) ([]model.Product, error) {
	query := db.WithContext(ctx).Order("sort_order").Order("id")
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID loads the product row only
func (r *ProductRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Product, error) {
	var product model.Product
	err := db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindDetailByID loads the product with its schedule and gallery in display order
func (r *ProductRepository) FindDetailByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Product, error) {
	var product model.Product
	err := db.WithContext(ctx).
		Preload("Schedule", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_no").Order("sort_order")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, db *gorm.DB, product *model.Product) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (r *ProductRepository) Save(ctx context.Context, db *gorm.DB, product *model.Product) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

// ReplaceChildren swaps the schedule and gallery rows of a product
func (r *ProductRepository) ReplaceChildren(ctx context.Context, db *gorm.DB, productID uint32, schedule []model.ProductSchedule, images []model.ProductImage) error {
	if err := r.deleteChildren(ctx, db, productID); err != nil {
		return err
	}
	if len(schedule) > 0 {
		if err := db.WithContext(ctx).Create(&schedule).Error; err != nil {
			return err
		}
	}
	if len(images) > 0 {
		if err := db.WithContext(ctx).Create(&images).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	if err := r.deleteChildren(ctx, db, id); err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *ProductRepository) deleteChildren(ctx context.Context, db *gorm.DB, productID uint32) error {
	if err := db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.ProductSchedule{}).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.ProductImage{}).Error
}
