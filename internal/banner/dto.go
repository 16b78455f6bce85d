package banner

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/locale"
)

type ListBannersQuery struct {
	Active *bool `form:"active"`
}

type BannerRequest struct {
	Title     locale.Required `json:"title"`
	Subtitle  locale.Pair     `json:"subtitle"`
	ImageURL  string          `json:"imageUrl" binding:"required,max=1000"`
	ImagePath string          `json:"imagePath" binding:"omitempty,storage_path,max=500"`
	LinkURL   string          `json:"linkUrl" binding:"max=1000"`
	IsActive  *bool           `json:"isActive"`
}

type BannerResponse struct {
	ID        uint32      `json:"id"`
	Title     locale.Pair `json:"title"`
	Subtitle  locale.Pair `json:"subtitle"`
	ImageURL  string      `json:"imageUrl"`
	ImagePath string      `json:"imagePath"`
	LinkURL   string      `json:"linkUrl"`
	SortOrder int         `json:"sortOrder"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (r *BannerRequest) apply(b *model.Banner) {
	b.Title = r.Title.Text()
	b.Subtitle = r.Subtitle.Text()
	b.Image = model.StoredFile{URL: r.ImageURL, Path: r.ImagePath}
	b.LinkURL = r.LinkURL
	if r.IsActive != nil {
		b.IsActive = *r.IsActive
	}
}

func toBannerResponse(b *model.Banner) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		Title:     locale.FromText(b.Title),
		Subtitle:  locale.FromText(b.Subtitle),
		ImageURL:  b.Image.URL,
		ImagePath: b.Image.Path,
		LinkURL:   b.LinkURL,
		SortOrder: b.SortOrder,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
