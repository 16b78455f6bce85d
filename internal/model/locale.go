package model

import "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"

// LocalizedText is a short {ko, en} pair embedded with a column prefix
//
//	Title LocalizedText `gorm:"embedded;embeddedPrefix:title_"` -> title_ko, title_en
type LocalizedText struct {
	Ko string `gorm:"column:ko;type:VARCHAR2(500)"`
	En string `gorm:"column:en;type:VARCHAR2(500)"`
}

// In returns the text for lang, falling back to Korean
func (t LocalizedText) In(lang i18n.Lang) string {
	return i18n.Message{Ko: t.Ko, En: t.En}.In(lang)
}

// LocalizedBody is a long {ko, en} pair (markdown, descriptions)
type LocalizedBody struct {
	Ko string `gorm:"column:ko;type:CLOB"`
	En string `gorm:"column:en;type:CLOB"`
}

// In returns the text for lang, falling back to Korean
func (t LocalizedBody) In(lang i18n.Lang) string {
	return i18n.Message{Ko: t.Ko, En: t.En}.In(lang)
}

// StoredFile is a Firebase Storage object referenced by an entity.
// URL is what the site renders; Path is what cleanup deletes.
type StoredFile struct {
	URL  string `gorm:"column:url;type:VARCHAR2(1000)"`
	Path string `gorm:"column:path;type:VARCHAR2(500)"`
}

// IsZero reports whether no file is attached
func (f StoredFile) IsZero() bool {
	return f.Path == "" && f.URL == ""
}
