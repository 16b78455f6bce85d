package activity

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
)

type ListLogsQuery struct {
	EntityType string `form:"entityType" binding:"omitempty,max=50"`
	Action     string `form:"action" binding:"omitempty,oneof=create update delete reorder send_email cleanup login custom"`
}

type CreateLogRequest struct {
	Action     string `json:"action" binding:"required,oneof=create update delete reorder send_email cleanup login custom"`
	EntityType string `json:"entityType" binding:"required,max=50"`
	EntityID   string `json:"entityId" binding:"max=100"`
	Summary    string `json:"summary" binding:"max=2000"`
}

type LogResponse struct {
	ID         uint64    `json:"id"`
	ActorID    *uint32   `json:"actorId"`
	ActorEmail string    `json:"actorEmail"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toLogResponse(l *model.ActivityLog) LogResponse {
	return LogResponse{
		ID:         l.ID,
		ActorID:    l.ActorID,
		ActorEmail: l.ActorEmail,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Summary:    l.Summary,
		CreatedAt:  l.CreatedAt,
	}
}
