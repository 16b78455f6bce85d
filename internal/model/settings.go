package model

// SiteSettingsID is the primary key of the single settings row
const SiteSettingsID uint32 = 1

// SiteSettings holds site-wide contact and footer information
type SiteSettings struct {
	ID uint32 `gorm:"column:id;primaryKey"`

	SiteName      LocalizedText `gorm:"embedded;embeddedPrefix:site_name_"`
	Address       LocalizedText `gorm:"embedded;embeddedPrefix:address_"`
	BusinessHours LocalizedText `gorm:"embedded;embeddedPrefix:business_hours_"`
	FooterText    LocalizedBody `gorm:"embedded;embeddedPrefix:footer_"`
	ContactEmail  string        `gorm:"column:contact_email;type:VARCHAR2(255)"`
	ContactPhone  string        `gorm:"column:contact_phone;type:VARCHAR2(50)"`
	KakaoURL      string        `gorm:"column:kakao_url;type:VARCHAR2(1000)"`
	InstagramURL  string        `gorm:"column:instagram_url;type:VARCHAR2(1000)"`
	Logo          StoredFile    `gorm:"embedded;embeddedPrefix:logo_"`

	BaseEntity
}

func (*SiteSettings) TableName() string {
	return "site_settings"
}

// DefaultSiteSettings is stored on first read
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:       SiteSettingsID,
		SiteName: LocalizedText{Ko: "투어 관리자", En: "Tour Admin"},
	}
}
