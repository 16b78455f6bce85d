package model

// TravelAgent is a B2B partner agency
type TravelAgent struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Name        string     `gorm:"column:name;type:VARCHAR2(100);not null"`
	CompanyName string     `gorm:"column:company_name;type:VARCHAR2(200);not null"`
	Email       string     `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_agent_email"`
	PhoneNumber string     `gorm:"column:phone_number;type:VARCHAR2(50)"`
	Country     string     `gorm:"column:country;type:VARCHAR2(50)"`
	Logo        StoredFile `gorm:"embedded;embeddedPrefix:logo_"`
	IsActive    bool       `gorm:"column:is_active;not null"`
	Memo        string     `gorm:"column:memo;type:VARCHAR2(2000)"`

	BaseEntity
}

func (*TravelAgent) TableName() string {
	return "travel_agent"
}
