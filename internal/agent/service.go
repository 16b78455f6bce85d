package agent

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

const entityType = "agent"

type AgentService struct {
	db              *gorm.DB
	agentRepository *AgentRepository
	storage         storage.Storage
	recorder        activity.Recorder
}

func NewAgentService(db *gorm.DB, agentRepository *AgentRepository, files storage.Storage, recorder activity.Recorder) *AgentService {
	return &AgentService{
		db:              db,
		agentRepository: agentRepository,
		storage:         files,
		recorder:        recorder,
	}
}

func (s *AgentService) List(ctx context.Context, query *ListAgentsQuery) ([]AgentResponse, error) {
	filter := AgentFilter{Active: query.Active, Q: strings.TrimSpace(query.Q)}

	agents, err := s.agentRepository.FindAll(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("여행사 목록 조회 실패: %w", err)
	}

	items := make([]AgentResponse, 0, len(agents))
	for i := range agents {
		items = append(items, toAgentResponse(&agents[i]))
	}
	return items, nil
}

func (s *AgentService) Get(ctx context.Context, id uint32) (*AgentResponse, error) {
	agent, err := s.find(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	response := toAgentResponse(agent)
	return &response, nil
}

func (s *AgentService) Create(ctx context.Context, request *AgentRequest) (uint32, error) {
	log := logger.FromContext(ctx)

	agent := &model.TravelAgent{IsActive: true}
	request.apply(agent)
	agent.StampCreated(sharedContext.ActorUserID(ctx))

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.checkEmail(ctx, tx, agent.Email, 0); err != nil {
			return err
		}
		if err := s.agentRepository.Create(ctx, tx, agent); err != nil {
			return fmt.Errorf("여행사 생성 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("여행사 생성 완료", "agent_id", agent.ID, "email", logger.MaskEmail(agent.Email))
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionCreate,
		EntityType: entityType,
		EntityID:   activity.ID(agent.ID),
		Summary:    agent.CompanyName,
	})
	return agent.ID, nil
}

func (s *AgentService) Update(ctx context.Context, id uint32, request *AgentRequest) error {
	var replaced, company string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		agent, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.checkEmail(ctx, tx, request.Email, id); err != nil {
			return err
		}

		oldPath := agent.Logo.Path
		request.apply(agent)
		agent.StampUpdated(sharedContext.ActorUserID(ctx))

		if err := s.agentRepository.Save(ctx, tx, agent); err != nil {
			return fmt.Errorf("여행사 수정 실패 agentID=%d: %w", id, err)
		}

		replaced = storage.Replaced(oldPath, agent.Logo.Path)
		company = agent.CompanyName
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, replaced)

	logger.FromContext(ctx).Info("여행사 수정 완료", "agent_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionUpdate,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    company,
	})
	return nil
}

func (s *AgentService) Delete(ctx context.Context, id uint32) error {
	var deleted *model.TravelAgent
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		agent, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.agentRepository.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("여행사 삭제 실패 agentID=%d: %w", id, err)
		}
		deleted = agent
		return nil
	})
	if err != nil {
		return err
	}

	storage.RemoveQuietly(ctx, s.storage, deleted.Logo.Path)

	logger.FromContext(ctx).Info("여행사 삭제 완료", "agent_id", id)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionDelete,
		EntityType: entityType,
		EntityID:   activity.ID(id),
		Summary:    deleted.CompanyName,
	})
	return nil
}

func (s *AgentService) checkEmail(ctx context.Context, db *gorm.DB, email string, exceptID uint32) error {
	taken, err := s.agentRepository.IsEmailTaken(ctx, db, email, exceptID)
	if err != nil {
		return fmt.Errorf("여행사 이메일 중복 확인 실패: %w", err)
	}
	if taken {
		logger.FromContext(ctx).Warn("이미 등록된 여행사 이메일", "email", logger.MaskEmail(email))
		return fmt.Errorf("error %w", ErrAgentAlreadyExists)
	}
	return nil
}

func (s *AgentService) find(ctx context.Context, db *gorm.DB, id uint32) (*model.TravelAgent, error) {
	agent, err := s.agentRepository.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("여행사를 찾을 수 없습니다 agentID=%d %w", id, ErrAgentNotFound)
		}
		return nil, fmt.Errorf("여행사 조회 실패: %w", err)
	}
	return agent, nil
}
