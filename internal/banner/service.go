package banner

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

const entityType = "banner"

type BannerService struct {
	db               *gorm.DB
	bannerRepository *BannerRepository
	storage          storage.Storage
	recorder         activity.Recorder
}

func NewBannerService(db *gorm.DB, bannerRepository *BannerRepository, files storage.Storage, recorder activity.Recorder) *BannerService {
	return &BannerService{
		db:               db,
		bannerRepository: bannerRepository,
		storage:          files,
		recorder:         recorder,
	}
}

func (s *BannerService) List(ctx context.Context, query *ListBannersQuery) ([]BannerResponse, error) {
	banners, err := s.bannerRepository.FindAll(ctx, s.db, query.Active)
	if err != nil {
		return nil, fmt.Errorf("배너 목록 조회 실패: %w", err)
	}

	items := make([]BannerResponse, 0, len(banners))
	for i := range banners {
		items = append(items, toBannerResponse(&banners[i]))
	}
	return items, nil
}

func (s *BannerService) Get(ctx context.Context, id uint32) (*BannerResponse, error) {
	banner, err := s.find(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	response := toBannerResponse(banner)
	return &response, nil
}

func (s *BannerService) Create(ctx context.Context, request *BannerRequest) (uint32, error) {
	log := logger.FromContext(ctx)

	banner := &model.Banner{IsActive: true}
	request.apply(banner)
	banner.StampCreated(sharedContext.ActorUserID(ctx))

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		next, err := database.NextSortOrder(ctx, tx, &model.Banner{})
		if err != nil {
			return err
		}
		banner.SortOrder = next

		if err := s.bannerRepository.Create(ctx, tx, banner); err != nil {
			return fmt.Errorf("배너 생성 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("배너 생성 완료", "banner_id", banner.ID, "sort_order", banner.SortOrder)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionCreate,
		EntityType: entityType,
		EntityID:   activity.ID(banner.ID),
		Summary:    banner.Title.Ko,
	})
	return banner.ID, nil
}

func (s *BannerService) Update(ctx context.Context, id uint32, request *BannerRequest) error {
	log := logger.FromContext(ctx)

	var replaced string
	var title string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		banner, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		oldPath := banner.Image.Path
		request.apply(banner)
		banner.StampUpdated(sharedContext.ActorUserID(ctx))

		if err := s.bannerRepository.Save(ctx, tx, banner); err != nil {
			return fmt.Errorf("배너 수정 실패 bannerID=%d: %w", id, err)
		}

		replaced = storage.Replaced(oldPath, banner.Image.Path)
		title = banner.Title.Ko
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, replaced)

	log.Info("배너 수정 완료", "banner_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionUpdate,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    title,
	})
	return nil
}

func (s *BannerService) Delete(ctx context.Context, id uint32) error {
	log := logger.FromContext(ctx)

	var deleted *model.Banner
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		banner, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.bannerRepository.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("배너 삭제 실패 bannerID=%d: %w", id, err)
		}
		deleted = banner
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, deleted.Image.Path)

	log.Info("배너 삭제 완료", "banner_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionDelete,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    deleted.Title.Ko,
	})
	return nil
}

func (s *BannerService) Reorder(ctx context.Context, ids []uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return database.Reorder(ctx, tx, &model.Banner{}, ids)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("배너 순서 변경 완료", "count", len(ids))
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionReorder,
		EntityType: entityType,
		Summary:    fmt.Sprintf("%v", ids),
	})
	return nil
}

func (s *BannerService) find(ctx context.Context, db *gorm.DB, id uint32) (*model.Banner, error) {
	banner, err := s.bannerRepository.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("배너를 찾을 수 없습니다 bannerID=%d %w", id, ErrBannerNotFound)
		}
		return nil, fmt.Errorf("배너 조회 실패: %w", err)
	}
	return banner, nil
}
