package content

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/markdown"
	"gorm.io/gorm"
)

const entityType = "content"

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,49}$`)

type ContentService struct {
	db                *gorm.DB
	contentRepository *ContentRepository
	recorder          activity.Recorder
}

func NewContentService(db *gorm.DB, contentRepository *ContentRepository, recorder activity.Recorder) *ContentService {
	return &ContentService{
		db:                db,
		contentRepository: contentRepository,
		recorder:          recorder,
	}
}

func (s *ContentService) List(ctx context.Context) ([]ContentSummary, error) {
	contents, err := s.contentRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("콘텐츠 목록 조회 실패: %w", err)
	}

	items := make([]ContentSummary, 0, len(contents))
	for i := range contents {
		items = append(items, toContentSummary(&contents[i]))
	}
	return items, nil
}

func (s *ContentService) Get(ctx context.Context, key string) (*ContentResponse, error) {
	content, err := s.find(ctx, s.db, key)
	if err != nil {
		return nil, err
	}
	response := toContentResponse(content)
	return &response, nil
}

// Render returns the page in lang as HTML, falling back to Korean when the translation is empty
func (s *ContentService) Render(ctx context.Context, key string, lang i18n.Lang) (*PublicContentResponse, error) {
	content, err := s.find(ctx, s.db, key)
	if err != nil {
		return nil, err
	}

	resolved := lang
	if lang == i18n.English && content.Body.En == "" {
		resolved = i18n.Korean
	}

	html, err := markdown.ToHTML(content.Body.In(resolved))
	if err != nil {
		return nil, err
	}

	return &PublicContentResponse{
		Key:       content.Key,
		Lang:      string(resolved),
		Title:     content.Title.In(resolved),
		HTML:      html,
		UpdatedAt: content.UpdatedAt,
	}, nil
}

// Upsert creates the keyed document or replaces its title and body. Reports whether it was created.
func (s *ContentService) Upsert(ctx context.Context, key string, request *ContentRequest) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	actorID := sharedContext.ActorUserID(ctx)
	var created bool
	var id uint32
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		content, err := s.contentRepository.FindByKey(ctx, tx, key)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("콘텐츠 조회 실패: %w", err)
		}

		if content == nil {
			content = &model.Content{Key: key, Title: request.Title.Text(), Body: request.Body.Body()}
			content.StampCreated(actorID)
			if err := s.contentRepository.Create(ctx, tx, content); err != nil {
				return fmt.Errorf("콘텐츠 생성 실패 key=%s: %w", key, err)
			}
			created = true
			id = content.ID
			return nil
		}

		content.Title = request.Title.Text()
		content.Body = request.Body.Body()
		content.StampUpdated(actorID)
		if err := s.contentRepository.Save(ctx, tx, content); err != nil {
			return fmt.Errorf("콘텐츠 수정 실패 key=%s: %w", key, err)
		}
		id = content.ID
		return nil
	})
	if err != nil {
		return false, err
	}

	action := model.ActionUpdate
	if created {
		action = model.ActionCreate
	}
	logger.FromContext(ctx).Info("콘텐츠 저장 완료", "key", key, "created", created)
	s.recorder.Record(ctx, activity.Entry{
		Action:     action,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    key,
	})
	return created, nil
}

func (s *ContentService) Delete(ctx context.Context, key string) error {
	id, err := database.InTransaction(ctx, s.db, func(tx *gorm.DB) (uint32, error) {
		content, err := s.find(ctx, tx, key)
		if err != nil {
			return 0, err
		}
		if err := s.contentRepository.Delete(ctx, tx, content.ID); err != nil {
			return 0, fmt.Errorf("콘텐츠 삭제 실패 key=%s: %w", key, err)
		}
		return content.ID, nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("콘텐츠 삭제 완료", "key", key)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionDelete,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    key,
	})
	return nil
}

func (s *ContentService) find(ctx context.Context, db *gorm.DB, key string) (*model.Content, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	content, err := s.contentRepository.FindByKey(ctx, db, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("콘텐츠를 찾을 수 없습니다 key=%s %w", key, ErrContentNotFound)
		}
		return nil, fmt.Errorf("콘텐츠 조회 실패: %w", err)
	}
	return content, nil
}

func validateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("key=%q %w", key, ErrInvalidContentKey)
	}
	return nil
}
