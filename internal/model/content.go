package model

// Content is a keyed markdown page (about, terms, privacy, faq ...)
type Content struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Key   string        `gorm:"column:content_key;type:VARCHAR2(50);not null;uniqueIndex:idx_content_key"`
	Title LocalizedText `gorm:"embedded;embeddedPrefix:title_"`
	Body  LocalizedBody `gorm:"embedded;embeddedPrefix:body_"`

	BaseEntity
}

func (*Content) TableName() string {
	return "site_content"
}
