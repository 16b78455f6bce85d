package model

import "time"

const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionReorder   = "reorder"
	ActionSendEmail = "send_email"
	ActionCleanup   = "cleanup"
	ActionLogin     = "login"
	ActionCustom    = "custom"
)

// ActivityLog is an audit entry; rows are append-only
type ActivityLog struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`

	ActorID    *uint32   `gorm:"column:actor_id;index:idx_activity_actor"`
	ActorEmail string    `gorm:"column:actor_email;type:VARCHAR2(255)"`
	Action     string    `gorm:"column:action_type;type:VARCHAR2(30);not null"`
	EntityType string    `gorm:"column:entity_type;type:VARCHAR2(50);not null;index:idx_activity_entity"`
	EntityID   string    `gorm:"column:entity_id;type:VARCHAR2(100)"`
	Summary    string    `gorm:"column:summary;type:VARCHAR2(2000)"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;index:idx_activity_created"`
}

func (*ActivityLog) TableName() string {
	return "activity_log"
}
