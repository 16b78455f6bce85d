package poster

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/locale"
)

type ListPostersQuery struct {
	Active *bool `form:"active"`
}

type PosterRequest struct {
	Title     locale.Required `json:"title"`
	ImageURL  string          `json:"imageUrl" binding:"required,max=1000"`
	ImagePath string          `json:"imagePath" binding:"required,storage_path,max=500"`
	PDFURL    string          `json:"pdfUrl" binding:"max=1000"`
	PDFPath   string          `json:"pdfPath" binding:"omitempty,storage_path,max=500"`
	IsActive  *bool           `json:"isActive"`
}

type PosterResponse struct {
	ID        uint32      `json:"id"`
	Title     locale.Pair `json:"title"`
	ImageURL  string      `json:"imageUrl"`
	ImagePath string      `json:"imagePath"`
	PDFURL    string      `json:"pdfUrl"`
	PDFPath   string      `json:"pdfPath"`
	SortOrder int         `json:"sortOrder"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (r *PosterRequest) apply(p *model.Poster) {
	p.Title = r.Title.Text()
	p.Image = model.StoredFile{URL: r.ImageURL, Path: r.ImagePath}
	p.PDF = model.StoredFile{URL: r.PDFURL, Path: r.PDFPath}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
}

func toPosterResponse(p *model.Poster) PosterResponse {
	return PosterResponse{
		ID:        p.ID,
		Title:     locale.FromText(p.Title),
		ImageURL:  p.Image.URL,
		ImagePath: p.Image.Path,
		PDFURL:    p.PDF.URL,
		PDFPath:   p.PDF.Path,
		SortOrder: p.SortOrder,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
