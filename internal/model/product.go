package model

// Product is a tour package
type Product struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Title        LocalizedText `gorm:"embedded;embeddedPrefix:title_"`
	Summary      LocalizedText `gorm:"embedded;embeddedPrefix:summary_"`
	Description  LocalizedBody `gorm:"embedded;embeddedPrefix:description_"`
	Region       string        `gorm:"column:region;type:VARCHAR2(50);index:idx_product_region"`
	Category     string        `gorm:"column:category;type:VARCHAR2(50)"`
	Price        int64         `gorm:"column:price;not null"`
	Currency     string        `gorm:"column:currency;type:VARCHAR2(3);not null"`
	DurationDays int           `gorm:"column:duration_days;not null"`
	Thumbnail    StoredFile    `gorm:"embedded;embeddedPrefix:thumbnail_"`
	Itinerary    StoredFile    `gorm:"embedded;embeddedPrefix:itinerary_"` // 일정표 PDF
	SortOrder    int           `gorm:"column:sort_order;not null;index:idx_product_sort"`
	IsActive     bool          `gorm:"column:is_active;not null"`

	Schedule []ProductSchedule `gorm:"foreignKey:ProductID"`
	Images   []ProductImage    `gorm:"foreignKey:ProductID"`

	BaseEntity
}

func (*Product) TableName() string {
	return "product"
}

// FilePaths lists every storage path owned by the product
func (p *Product) FilePaths() []string {
	paths := []string{p.Thumbnail.Path, p.Itinerary.Path}
	for _, img := range p.Images {
		paths = append(paths, img.File.Path)
	}
	return paths
}

// ProductSchedule is one itinerary entry. SpotID is stored as-is and not enforced.
type ProductSchedule struct {
	ID        uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID uint32 `gorm:"column:product_id;not null;index:idx_schedule_product"`

	Day         int           `gorm:"column:day_no;not null"`
	SortOrder   int           `gorm:"column:sort_order;not null"`
	SpotID      *uint32       `gorm:"column:spot_id"`
	Title       LocalizedText `gorm:"embedded;embeddedPrefix:title_"`
	Description LocalizedBody `gorm:"embedded;embeddedPrefix:description_"`
}

func (*ProductSchedule) TableName() string {
	return "product_schedule"
}

// ProductImage is a gallery image
type ProductImage struct {
	ID        uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID uint32 `gorm:"column:product_id;not null;index:idx_image_product"`

	File      StoredFile `gorm:"embedded;embeddedPrefix:file_"`
	SortOrder int        `gorm:"column:sort_order;not null"`
}

func (*ProductImage) TableName() string {
	return "product_image"
}
