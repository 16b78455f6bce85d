package spot

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/locale"
)

type ListSpotsQuery struct {
	Region string `form:"region" binding:"max=50"`
	Q      string `form:"q" binding:"max=100"`
}

type SpotRequest struct {
	Name        locale.Required `json:"name"`
	Description locale.Pair     `json:"description"`
	Region      string          `json:"region" binding:"max=50"`
	Address     string          `json:"address" binding:"max=500"`
	Latitude    float64         `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64         `json:"longitude" binding:"min=-180,max=180"`
	ImageURL    string          `json:"imageUrl" binding:"max=1000"`
	ImagePath   string          `json:"imagePath" binding:"omitempty,storage_path,max=500"`
}

type SpotResponse struct {
	ID          uint32      `json:"id"`
	Name        locale.Pair `json:"name"`
	Description locale.Pair `json:"description"`
	Region      string      `json:"region"`
	Address     string      `json:"address"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	ImageURL    string      `json:"imageUrl"`
	ImagePath   string      `json:"imagePath"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (r *SpotRequest) apply(s *model.Spot) {
	s.Name = r.Name.Text()
	s.Description = r.Description.Body()
	s.Region = r.Region
	s.Address = r.Address
	s.Latitude = r.Latitude
	s.Longitude = r.Longitude
	s.Image = model.StoredFile{URL: r.ImageURL, Path: r.ImagePath}
}

func toSpotResponse(s *model.Spot) SpotResponse {
	return SpotResponse{
		ID:          s.ID,
		Name:        locale.FromText(s.Name),
		Description: locale.FromBody(s.Description),
		Region:      s.Region,
		Address:     s.Address,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		ImageURL:    s.Image.URL,
		ImagePath:   s.Image.Path,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
