package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"gorm.io/gorm"
)

const entityType = "product"

type ProductService struct {
	db                *gorm.DB
	productRepository *ProductRepository
	storage           storage.Storage
	recorder          activity.Recorder
}

func NewProductService(db *gorm.DB, productRepository *ProductRepository, files storage.Storage, recorder activity.Recorder) *ProductService {
	return &ProductService{
		db:                db,
		productRepository: productRepository,
		storage:           files,
		recorder:          recorder,
	}
}

func (s *ProductService) List(ctx context.Context, query *ListProductsQuery) ([]ProductSummary, error) {
	filter := ProductFilter{Region: query.Region, Category: query.Category, Active: query.Active}

	products, err := s.productRepository.FindAll(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("상품 목록 조회 실패: %w", err)
	}

	items := make([]ProductSummary, 0, len(products))
	for i := range products {
		items = append(items, toProductSummary(&products[i]))
	}
	return items, nil
}

func (s *ProductService) Get(ctx context.Context, id uint32) (*ProductResponse, error) {
	product, err := s.findDetail(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	response := toProductResponse(product)
	return &response, nil
}

func (s *ProductService) Create(ctx context.Context, request *ProductRequest) (uint32, error) {
	product := &model.Product{IsActive: true}
	request.apply(product)
	product.StampCreated(sharedContext.ActorUserID(ctx))

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		next, err := database.NextSortOrder(ctx, tx, &model.Product{})
		if err != nil {
			return err
		}
		product.SortOrder = next

		if err := s.productRepository.Create(ctx, tx, product); err != nil {
			return fmt.Errorf("상품 생성 실패: %w", err)
		}

		schedule, images := request.children(product.ID)
		if err := s.productRepository.ReplaceChildren(ctx, tx, product.ID, schedule, images); err != nil {
			return fmt.Errorf("상품 일정/이미지 저장 실패 productID=%d: %w", product.ID, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info("상품 생성 완료",
		"product_id", product.ID,
		"schedule_count", len(request.Schedule),
		"image_count", len(request.Images),
	)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionCreate,
		EntityType: entityType,
		EntityID:   activity.ID(product.ID),
		Summary:    product.Title.Ko,
	})
	return product.ID, nil
}

// Update replaces the schedule and gallery wholesale and removes files that are no longer referenced
func (s *ProductService) Update(ctx context.Context, id uint32, request *ProductRequest) error {
	var unused []string
	var title string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		product, err := s.findDetail(ctx, tx, id)
		if err != nil {
			return err
		}

		oldPaths := product.FilePaths()
		request.apply(product)
		product.StampUpdated(sharedContext.ActorUserID(ctx))

		if err := s.productRepository.Save(ctx, tx, product); err != nil {
			return fmt.Errorf("상품 수정 실패 productID=%d: %w", id, err)
		}

		schedule, images := request.children(id)
		if err := s.productRepository.ReplaceChildren(ctx, tx, id, schedule, images); err != nil {
			return fmt.Errorf("상품 일정/이미지 교체 실패 productID=%d: %w", id, err)
		}

		product.Images = images
		unused = difference(oldPaths, product.FilePaths())
		title = product.Title.Ko
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, unused...)

	logger.FromContext(ctx).Info("상품 수정 완료", "product_id", id, "removed_files", len(unused))
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionUpdate,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    title,
	})
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id uint32) error {
	var deleted *model.Product
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		product, err := s.findDetail(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.productRepository.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("상품 삭제 실패 productID=%d: %w", id, err)
		}
		deleted = product
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, deleted.FilePaths()...)

	logger.FromContext(ctx).Info("상품 삭제 완료", "product_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionDelete,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    deleted.Title.Ko,
	})
	return nil
}

func (s *ProductService) Reorder(ctx context.Context, ids []uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return database.Reorder(ctx, tx, &model.Product{}, ids)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("상품 순서 변경 완료", "count", len(ids))
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionReorder,
		EntityType: entityType,
		Summary:    fmt.Sprintf("%v", ids),
	})
	return nil
}

func (s *ProductService) findDetail(ctx context.Context, db *gorm.DB, id uint32) (*model.Product, error) {
	product, err := s.productRepository.FindDetailByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("상품을 찾을 수 없습니다 productID=%d %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("상품 조회 실패: %w", err)
	}
	return product, nil
}

// difference returns the non-empty paths of before that are absent from after
func difference(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, p := range after {
		kept[p] = true
	}

	var removed []string
	for _, p := range before {
		if p != "" && !kept[p] {
			removed = append(removed, p)
		}
	}
	return removed
}
