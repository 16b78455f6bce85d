package product

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/locale"
)

const defaultCurrency = "KRW"

type ListProductsQuery struct {
	Region   string `form:"region" binding:"max=50"`
	Category string `form:"category" binding:"max=50"`
	Active   *bool  `form:"active"`
}

type FileRef struct {
	URL  string `json:"url" binding:"required,max=1000"`
	Path string `json:"path" binding:"omitempty,storage_path,max=500"`
}

type ScheduleItem struct {
	Day         int             `json:"day" binding:"required,min=1"`
	Title       locale.Required `json:"title"`
	Description locale.Pair     `json:"description"`
	SpotID      *uint32         `json:"spotId"`
}

type ProductRequest struct {
	Title         locale.Required `json:"title"`
	Summary       locale.Pair     `json:"summary"`
	Description   locale.Pair     `json:"description"`
	Region        string          `json:"region" binding:"max=50"`
	Category      string          `json:"category" binding:"max=50"`
	Price         int64           `json:"price" binding:"min=0"`
	Currency      string          `json:"currency" binding:"omitempty,len=3"`
	DurationDays  int             `json:"durationDays" binding:"min=0"`
	ThumbnailURL  string          `json:"thumbnailUrl" binding:"max=1000"`
	ThumbnailPath string          `json:"thumbnailPath" binding:"omitempty,storage_path,max=500"`
	ItineraryURL  string          `json:"itineraryUrl" binding:"max=1000"`
	ItineraryPath string          `json:"itineraryPath" binding:"omitempty,storage_path,max=500"`
	Images        []FileRef       `json:"images" binding:"dive"`
	Schedule      []ScheduleItem  `json:"schedule" binding:"dive"`
	IsActive      *bool           `json:"isActive"`
}

type ProductSummary struct {
	ID           uint32      `json:"id"`
	Title        locale.Pair `json:"title"`
	Summary      locale.Pair `json:"summary"`
	Region       string      `json:"region"`
	Category     string      `json:"category"`
	Price        int64       `json:"price"`
	Currency     string      `json:"currency"`
	DurationDays int         `json:"durationDays"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	SortOrder    int         `json:"sortOrder"`
	IsActive     bool        `json:"isActive"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type ScheduleResponse struct {
	ID          uint32      `json:"id"`
	Day         int         `json:"day"`
	Title       locale.Pair `json:"title"`
	Description locale.Pair `json:"description"`
	SpotID      *uint32     `json:"spotId"`
}

type ProductResponse struct {
	ProductSummary
	Description   locale.Pair        `json:"description"`
	ThumbnailPath string             `json:"thumbnailPath"`
	ItineraryURL  string             `json:"itineraryUrl"`
	ItineraryPath string             `json:"itineraryPath"`
	Images        []FileRef          `json:"images"`
	Schedule      []ScheduleResponse `json:"schedule"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func (r *ProductRequest) apply(p *model.Product) {
	p.Title = r.Title.Text()
	p.Summary = r.Summary.Text()
	p.Description = r.Description.Body()
	p.Region = r.Region
	p.Category = r.Category
	p.Price = r.Price
	p.Currency = r.Currency
	if p.Currency == "" {
		p.Currency = defaultCurrency
	}
	p.DurationDays = r.DurationDays
	p.Thumbnail = model.StoredFile{URL: r.ThumbnailURL, Path: r.ThumbnailPath}
	p.Itinerary = model.StoredFile{URL: r.ItineraryURL, Path: r.ItineraryPath}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
}

// children builds the schedule and gallery rows in request order
func (r *ProductRequest) children(productID uint32) ([]model.ProductSchedule, []model.ProductImage) {
	schedule := make([]model.ProductSchedule, 0, len(r.Schedule))
	for i, item := range r.Schedule {
		schedule = append(schedule, model.ProductSchedule{
			ProductID:   productID,
			Day:         item.Day,
			SortOrder:   i,
			SpotID:      item.SpotID,
			Title:       item.Title.Text(),
			Description: item.Description.Body(),
		})
	}

	images := make([]model.ProductImage, 0, len(r.Images))
	for i, img := range r.Images {
		images = append(images, model.ProductImage{
			ProductID: productID,
			File:      model.StoredFile{URL: img.URL, Path: img.Path},
			SortOrder: i,
		})
	}

	return schedule, images
}

func toProductSummary(p *model.Product) ProductSummary {
	return ProductSummary{
		ID:           p.ID,
		Title:        locale.FromText(p.Title),
		Summary:      locale.FromText(p.Summary),
		Region:       p.Region,
		Category:     p.Category,
		Price:        p.Price,
		Currency:     p.Currency,
		DurationDays: p.DurationDays,
		ThumbnailURL: p.Thumbnail.URL,
		SortOrder:    p.SortOrder,
		IsActive:     p.IsActive,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponse(p *model.Product) ProductResponse {
	images := make([]FileRef, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, FileRef{URL: img.File.URL, Path: img.File.Path})
	}

	schedule := make([]ScheduleResponse, 0, len(p.Schedule))
	for _, s := range p.Schedule {
		schedule = append(schedule, ScheduleResponse{
			ID:          s.ID,
			Day:         s.Day,
			Title:       locale.FromText(s.Title),
			Description: locale.FromBody(s.Description),
			SpotID:      s.SpotID,
		})
	}

	return ProductResponse{
		ProductSummary: toProductSummary(p),
		Description:    locale.FromBody(p.Description),
		ThumbnailPath:  p.Thumbnail.Path,
		ItineraryURL:   p.Itinerary.URL,
		ItineraryPath:  p.Itinerary.Path,
		Images:         images,
		Schedule:       schedule,
		CreatedAt:      p.CreatedAt,
	}
}
