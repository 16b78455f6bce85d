package model

// Spot is a destination referenced by product schedules
type Spot struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Name        LocalizedText `gorm:"embedded;embeddedPrefix:name_"`
	Description LocalizedBody `gorm:"embedded;embeddedPrefix:description_"`
	Region      string        `gorm:"column:region;type:VARCHAR2(50);index:idx_spot_region"`
	Address     string        `gorm:"column:address;type:VARCHAR2(500)"`
	Latitude    float64       `gorm:"column:latitude"`
	Longitude   float64       `gorm:"column:longitude"`
	Image       StoredFile    `gorm:"embedded;embeddedPrefix:image_"`

	BaseEntity
}

func (*Spot) TableName() string {
	return "spot"
}
