package model

// Banner is a hero slide on the main page
type Banner struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Title     LocalizedText `gorm:"embedded;embeddedPrefix:title_"`
	Subtitle  LocalizedText `gorm:"embedded;embeddedPrefix:subtitle_"`
	Image     StoredFile    `gorm:"embedded;embeddedPrefix:image_"`
	LinkURL   string        `gorm:"column:link_url;type:VARCHAR2(1000)"`
	SortOrder int           `gorm:"column:sort_order;not null;index:idx_banner_sort"`
	IsActive  bool          `gorm:"column:is_active;not null"`

	BaseEntity
}

func (*Banner) TableName() string {
	return "banner"
}
