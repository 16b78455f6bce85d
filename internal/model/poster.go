package model

// Poster is a promotional image (and optional PDF) mailed to travel agents
type Poster struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Title     LocalizedText `gorm:"embedded;embeddedPrefix:title_"`
	Image     StoredFile    `gorm:"embedded;embeddedPrefix:image_"`
	PDF       StoredFile    `gorm:"embedded;embeddedPrefix:pdf_"`
	SortOrder int           `gorm:"column:sort_order;not null;index:idx_poster_sort"`
	IsActive  bool          `gorm:"column:is_active;not null"`

	BaseEntity
}

func (*Poster) TableName() string {
	return "poster"
}
