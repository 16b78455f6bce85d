package agent

import (
	"context"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"gorm.io/gorm"
)

type AgentFilter struct {
	Active *bool
	Q      string
}

type AgentRepository struct{}

func NewAgentRepository() *AgentRepository {
	return &AgentRepository{}
}

func (r *AgentRepository) FindAll(ctx context.Context, db *gorm.DB, filter AgentFilter) ([]model.TravelAgent, error) {
	query := db.WithContext(ctx).Order("company_name").Order("id")
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Q != "" {
		name, pattern := database.LikeContains("name", filter.Q)
		company, _ := database.LikeContains("company_name", filter.Q)
		email, _ := database.LikeContains("email", filter.Q)
		query = query.Where(name+" OR "+company+" OR "+email, pattern, pattern, pattern)
	}

	var agents []model.TravelAgent
	if err := query.Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// FindActiveByIDs returns the active agents among ids
func (r *AgentRepository) FindActiveByIDs(ctx context.Context, db *gorm.DB, ids []uint32) ([]model.TravelAgent, error) {
	var agents []model.TravelAgent
	err := db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("is_active = ?", true).
		Order("id").
		Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *AgentRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.TravelAgent, error) {
	var agent model.TravelAgent
	err := db.WithContext(ctx).Where("id = ?", id).First(&agent).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// IsEmailTaken reports whether another agent (not exceptID) uses email
func (r *AgentRepository) IsEmailTaken(ctx context.Context, db *gorm.DB, email string, exceptID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.TravelAgent{}).
		Where("email = ?", email).
		Where("id <> ?", exceptID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AgentRepository) Create(ctx context.Context, db *gorm.DB, agent *model.TravelAgent) error {
	return db.WithContext(ctx).Create(agent).Error
}

func (r *AgentRepository) Save(ctx context.Context, db *gorm.DB, agent *model.TravelAgent) error {
	return db.WithContext(ctx).Save(agent).Error
}

func (r *AgentRepository) Delete(ctx context.Context, db *gorm.DB, id uint32) error {
	return db.WithContext(ctx).Delete(&model.TravelAgent{}, id).Error
}
