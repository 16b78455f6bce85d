package poster

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

const entityType = "poster"

type PosterService struct {
	db               *gorm.DB
	posterRepository *PosterRepository
	storage          storage.Storage
	recorder         activity.Recorder
}

func NewPosterService(db *gorm.DB, posterRepository *PosterRepository, files storage.Storage, recorder activity.Recorder) *PosterService {
	return &PosterService{
		db:               db,
		posterRepository: posterRepository,
		storage:          files,
		recorder:         recorder,
	}
}

func (s *PosterService) List(ctx context.Context, query *ListPostersQuery) ([]PosterResponse, error) {
	posters, err := s.posterRepository.FindAll(ctx, s.db, query.Active)
	if err != nil {
		return nil, fmt.Errorf("포스터 목록 조회 실패: %w", err)
	}

	items := make([]PosterResponse, 0, len(posters))
	for i := range posters {
		items = append(items, toPosterResponse(&posters[i]))
	}
	return items, nil
}

func (s *PosterService) Get(ctx context.Context, id uint32) (*PosterResponse, error) {
	poster, err := s.find(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	response := toPosterResponse(poster)
	return &response, nil
}

func (s *PosterService) Create(ctx context.Context, request *PosterRequest) (uint32, error) {
	poster := &model.Poster{IsActive: true}
	request.apply(poster)
	poster.StampCreated(sharedContext.ActorUserID(ctx))

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		next, err := database.NextSortOrder(ctx, tx, &model.Poster{})
		if err != nil {
			return err
		}
		poster.SortOrder = next

		if err := s.posterRepository.Create(ctx, tx, poster); err != nil {
			return fmt.Errorf("포스터 생성 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info("포스터 생성 완료", "poster_id", poster.ID)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionCreate,
		EntityType: entityType,
		EntityID:   activity.ID(poster.ID),
		Summary:    poster.Title.Ko,
	})
	return poster.ID, nil
}

func (s *PosterService) Update(ctx context.Context, id uint32, request *PosterRequest) error {
	var replaced []string
	var title string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		poster, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		oldImage, oldPDF := poster.Image.Path, poster.PDF.Path
		request.apply(poster)
		poster.StampUpdated(sharedContext.ActorUserID(ctx))

		if err := s.posterRepository.Save(ctx, tx, poster); err != nil {
			return fmt.Errorf("포스터 수정 실패 posterID=%d: %w", id, err)
		}

		replaced = []string{
			storage.Replaced(oldImage, poster.Image.Path),
			storage.Replaced(oldPDF, poster.PDF.Path),
		}
		title = poster.Title.Ko
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, replaced...)

	logger.FromContext(ctx).Info("포스터 수정 완료", "poster_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionUpdate,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    title,
	})
	return nil
}

func (s *PosterService) Delete(ctx context.Context, id uint32) error {
	var deleted *model.Poster
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		poster, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.posterRepository.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("포스터 삭제 실패 posterID=%d: %w", id, err)
		}
		deleted = poster
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, deleted.Image.Path, deleted.PDF.Path)

	logger.FromContext(ctx).Info("포스터 삭제 완료", "poster_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionDelete,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    deleted.Title.Ko,
	})
	return nil
}

func (s *PosterService) Reorder(ctx context.Context, ids []uint32) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return database.Reorder(ctx, tx, &model.Poster{}, ids)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("포스터 순서 변경 완료", "count", len(ids))
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionReorder,
		EntityType: entityType,
		Summary:    fmt.Sprintf("%v", ids),
	})
	return nil
}

func (s *PosterService) find(ctx context.Context, db *gorm.DB, id uint32) (*model.Poster, error) {
	poster, err := s.posterRepository.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("포스터를 찾을 수 없습니다 posterID=%d %w", id, ErrPosterNotFound)
		}
		return nil, fmt.Errorf("포스터 조회 실패: %w", err)
	}
	return poster, nil
}
