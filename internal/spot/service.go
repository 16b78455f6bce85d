package spot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"gorm.io/gorm"
)

const entityType = "spot"

type SpotService struct {
	db             *gorm.DB
	spotRepository *SpotRepository
	storage        storage.Storage
	recorder       activity.Recorder
}

func NewSpotService(db *gorm.DB, spotRepository *SpotRepository, files storage.Storage, recorder activity.Recorder) *SpotService {
	return &SpotService{
		db:             db,
		spotRepository: spotRepository,
		storage:        files,
		recorder:       recorder,
	}
}

func (s *SpotService) List(ctx context.Context, query *ListSpotsQuery) ([]SpotResponse, error) {
	filter := SpotFilter{Region: query.Region, Q: strings.TrimSpace(query.Q)}

	spots, err := s.spotRepository.FindAll(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("관광지 목록 조회 실패: %w", err)
	}

	items := make([]SpotResponse, 0, len(spots))
	for i := range spots {
		items = append(items, toSpotResponse(&spots[i]))
	}
	return items, nil
}

func (s *SpotService) Get(ctx context.Context, id uint32) (*SpotResponse, error) {
	spot, err := s.find(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	response := toSpotResponse(spot)
	return &response, nil
}

func (s *SpotService) Create(ctx context.Context, request *SpotRequest) (uint32, error) {
	spot := &model.Spot{}
	request.apply(spot)
	spot.StampCreated(sharedContext.ActorUserID(ctx))

	if err := s.spotRepository.Create(ctx, s.db, spot); err != nil {
		return 0, fmt.Errorf("관광지 생성 실패: %w", err)
	}

	logger.FromContext(ctx).Info("관광지 생성 완료", "spot_id", spot.ID)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionCreate,
		EntityType: entityType,
		EntityID:   activity.ID(spot.ID),
		Summary:    spot.Name.Ko,
	})
	return spot.ID, nil
}

func (s *SpotService) Update(ctx context.Context, id uint32, request *SpotRequest) error {
	var replaced, name string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		spot, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		oldPath := spot.Image.Path
		request.apply(spot)
		spot.StampUpdated(sharedContext.ActorUserID(ctx))

		if err := s.spotRepository.Save(ctx, tx, spot); err != nil {
			return fmt.Errorf("관광지 수정 실패 spotID=%d: %w", id, err)
		}

		replaced = storage.Replaced(oldPath, spot.Image.Path)
		name = spot.Name.Ko
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, replaced)

	logger.FromContext(ctx).Info("관광지 수정 완료", "spot_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionUpdate,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    name,
	})
	return nil
}

// Delete removes the spot only. Product schedules keep their spot id.
func (s *SpotService) Delete(ctx context.Context, id uint32) error {
	var deleted *model.Spot
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		spot, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.spotRepository.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("관광지 삭제 실패 spotID=%d: %w", id, err)
		}
		deleted = spot
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, deleted.Image.Path)

	logger.FromContext(ctx).Info("관광지 삭제 완료", "spot_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionDelete,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    deleted.Name.Ko,
	})
	return nil
}

func (s *SpotService) find(ctx context.Context, db *gorm.DB, id uint32) (*model.Spot, error) {
	spot, err := s.spotRepository.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("관광지를 찾을 수 없습니다 spotID=%d %w", id, ErrSpotNotFound)
		}
		return nil, fmt.Errorf("관광지 조회 실패: %w", err)
	}
	return spot, nil
}
