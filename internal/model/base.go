package model

import (
	"time"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
// CreatedBy, UpdatedBy는 Service에서 인증된 사용자로 설정
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"` // GORM이 자동 관리
	UpdatedAt time.Time `gorm:"column:updated_at;not null"` // GORM이 자동 관리
	CreatedBy *uint32   `gorm:"column:created_by"`
	UpdatedBy *uint32   `gorm:"column:updated_by"`
}

// StampCreated records the creating user on a new entity
func (b *BaseEntity) StampCreated(userID uint32) {
	if userID == 0 {
		return
	}
	b.CreatedBy = &userID
	b.UpdatedBy = &userID
}

// StampUpdated records the last modifying user
func (b *BaseEntity) StampUpdated(userID uint32) {
	if userID == 0 {
		return
	}
	b.UpdatedBy = &userID
}
