package model

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is a back-office account
type User struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Email       string     `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_user_email"` // 이메일 (unique)
	Name        string     `gorm:"column:name;type:VARCHAR2(100);not null"`
	PhoneNumber string     `gorm:"column:phone_number;type:VARCHAR2(100)"`
	Password    string     `gorm:"column:password;type:VARCHAR2(60);not null"` // bcrypt 해시
	Role        string     `gorm:"column:user_role;type:VARCHAR2(20);not null"`
	IsActive    bool       `gorm:"column:is_active;not null"`
	LastLoginAt *time.Time `gorm:"column:last_login_at"`

	BaseEntity
}

// TableName specifies the table name for User
func (*User) TableName() string {
	return "admin_user"
}

// NewUser creates an active user; password must already be hashed
func NewUser(name, email, phoneNumber, hashedPassword, role string) *User {
	return &User{
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
		Password:    hashedPassword,
		Role:        role,
		IsActive:    true,
	}
}
