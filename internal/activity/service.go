package activity

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

const maxSummaryLength = 2000

// Entry describes one audited action. The actor is taken from the context.
type Entry struct {
	Action     string
	EntityType string
	EntityID   string
	Summary    string
}

// Recorder writes audit entries after a successful mutation
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// ID formats a numeric entity id for Entry.EntityID
func ID(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

type ActivityService struct {
	db                 *gorm.DB
	activityRepository *ActivityRepository
	now                func() time.Time
}

func NewActivityService(db *gorm.DB, activityRepository *ActivityRepository) *ActivityService {
	return &ActivityService{
		db:                 db,
		activityRepository: activityRepository,
		now:                time.Now,
	}
}

// Record stores entry. Failures are logged and never returned.
func (s *ActivityService) Record(ctx context.Context, entry Entry) {
	log := logger.FromContext(ctx)

	if err := s.create(ctx, entry); err != nil {
		log.Warn("활동 로그 기록 실패 (무시)",
			"action", entry.Action,
			"entity_type", entry.EntityType,
			"entity_id", entry.EntityID,
			"error", err,
		)
	}
}

// Create stores a client-side event and reports failures to the caller
func (s *ActivityService) Create(ctx context.Context, request *CreateLogRequest) (uint64, error) {
	entry := Entry{
		Action:     request.Action,
		EntityType: request.EntityType,
		EntityID:   request.EntityID,
		Summary:    request.Summary,
	}

	log, err := s.build(ctx, entry)
	if err != nil {
		return 0, err
	}
	if err := s.activityRepository.Create(ctx, s.db, log); err != nil {
		return 0, fmt.Errorf("활동 로그 저장 실패: %w", err)
	}
	return log.ID, nil
}

func (s *ActivityService) List(ctx context.Context, query *ListLogsQuery, page handler.Page) (*handler.PageResponse[LogResponse], error) {
	filter := LogFilter{EntityType: query.EntityType, Action: query.Action}

	logs, total, err := s.activityRepository.FindPage(ctx, s.db, filter, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("활동 로그 조회 실패: %w", err)
	}

	items := make([]LogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, toLogResponse(&logs[i]))
	}

	response := handler.NewPageResponse(items, total, page)
	return &response, nil
}

func (s *ActivityService) create(ctx context.Context, entry Entry) error {
	log, err := s.build(ctx, entry)
	if err != nil {
		return err
	}
	return s.activityRepository.Create(ctx, s.db, log)
}

func (s *ActivityService) build(ctx context.Context, entry Entry) (*model.ActivityLog, error) {
	if entry.Action == "" || entry.EntityType == "" {
		return nil, fmt.Errorf("활동 로그 필수값 누락 action=%q entity_type=%q", entry.Action, entry.EntityType)
	}

	log := &model.ActivityLog{
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Summary:    truncate(entry.Summary, maxSummaryLength),
		CreatedAt:  s.now(),
	}

	if actor, ok := sharedContext.ActorFromContext(ctx); ok {
		if actor.UserID != 0 {
			actorID := actor.UserID
			log.ActorID = &actorID
		}
		log.ActorEmail = actor.Email
	}

	return log, nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
