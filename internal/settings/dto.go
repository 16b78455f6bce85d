package settings

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/locale"
)

type SettingsRequest struct {
	SiteName      locale.Required `json:"siteName"`
	Address       locale.Pair     `json:"address"`
	BusinessHours locale.Pair     `json:"businessHours"`
	FooterText    locale.Pair     `json:"footerText"`
	ContactEmail  string          `json:"contactEmail" binding:"omitempty,email,max=255"`
	ContactPhone  string          `json:"contactPhone" binding:"omitempty,phone_intl"`
	KakaoURL      string          `json:"kakaoUrl" binding:"omitempty,url,max=1000"`
	InstagramURL  string          `json:"instagramUrl" binding:"omitempty,url,max=1000"`
	LogoURL       string          `json:"logoUrl" binding:"max=1000"`
	LogoPath      string          `json:"logoPath" binding:"omitempty,storage_path,max=500"`
}

type SettingsResponse struct {
	SiteName      locale.Pair `json:"siteName"`
	Address       locale.Pair `json:"address"`
	BusinessHours locale.Pair `json:"businessHours"`
	FooterText    locale.Pair `json:"footerText"`
	ContactEmail  string      `json:"contactEmail"`
	ContactPhone  string      `json:"contactPhone"`
	KakaoURL      string      `json:"kakaoUrl"`
	InstagramURL  string      `json:"instagramUrl"`
	LogoURL       string      `json:"logoUrl"`
	LogoPath      string      `json:"logoPath"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func (r *SettingsRequest) apply(s *model.SiteSettings) {
	s.SiteName = r.SiteName.Text()
	s.Address = r.Address.Text()
	s.BusinessHours = r.BusinessHours.Text()
	s.FooterText = r.FooterText.Body()
	s.ContactEmail = r.ContactEmail
	s.ContactPhone = r.ContactPhone
	s.KakaoURL = r.KakaoURL
	s.InstagramURL = r.InstagramURL
	s.Logo = model.StoredFile{URL: r.LogoURL, Path: r.LogoPath}
}

func toSettingsResponse(s *model.SiteSettings) SettingsResponse {
	return SettingsResponse{
		SiteName:      locale.FromText(s.SiteName),
		Address:       locale.FromText(s.Address),
		BusinessHours: locale.FromText(s.BusinessHours),
		FooterText:    locale.FromBody(s.FooterText),
		ContactEmail:  s.ContactEmail,
		ContactPhone:  s.ContactPhone,
		KakaoURL:      s.KakaoURL,
		InstagramURL:  s.InstagramURL,
		LogoURL:       s.Logo.URL,
		LogoPath:      s.Logo.Path,
		UpdatedAt:     s.UpdatedAt,
	}
}
