package settings

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"gorm.io/gorm"
)

const entityType = "settings"

type SettingsService struct {
	db                 *gorm.DB
	settingsRepository *SettingsRepository
	storage            storage.Storage
	recorder           activity.Recorder
}

func NewSettingsService(db *gorm.DB, settingsRepository *SettingsRepository, files storage.Storage, recorder activity.Recorder) *SettingsService {
	return &SettingsService{
		db:                 db,
		settingsRepository: settingsRepository,
		storage:            files,
		recorder:           recorder,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	settings, err := s.settingsRepository.FindOrCreate(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("사이트 설정 조회 실패: %w", err)
	}
	response := toSettingsResponse(settings)
	return &response, nil
}

func (s *SettingsService) Update(ctx context.Context, request *SettingsRequest) error {
	var replaced string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		settings, err := s.settingsRepository.FindOrCreate(ctx, tx)
		if err != nil {
			return fmt.Errorf("사이트 설정 조회 실패: %w", err)
		}

		oldPath := settings.Logo.Path
		request.apply(settings)
		settings.StampUpdated(sharedContext.ActorUserID(ctx))

		if err := s.settingsRepository.Save(ctx, tx, settings); err != nil {
			return fmt.Errorf("사이트 설정 저장 실패: %w", err)
		}

		replaced = storage.Replaced(oldPath, settings.Logo.Path)
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, replaced)

	logger.FromContext(ctx).Info("사이트 설정 저장 완료")
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionUpdate,
		EntityType: entityType,
		EntityID:   activity.ID(model.SiteSettingsID),
		Summary:    request.SiteName.Ko,
	})
	return nil
}
