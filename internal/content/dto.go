package content

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/locale"
)

type ContentRequest struct {
	Title locale.Required `json:"title"`
	Body  locale.Required `json:"body"`
}

type ContentSummary struct {
	ID        uint32      `json:"id"`
	Key       string      `json:"key"`
	Title     locale.Pair `json:"title"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type ContentResponse struct {
	ContentSummary
	Body      locale.Pair `json:"body"`
	CreatedAt time.Time   `json:"createdAt"`
}

// PublicContentResponse is the rendered page served to the public site
type PublicContentResponse struct {
	Key       string    `json:"key"`
	Lang      string    `json:"lang"`
	Title     string    `json:"title"`
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toContentSummary(c *model.Content) ContentSummary {
	return ContentSummary{
		ID:        c.ID,
		Key:       c.Key,
		Title:     locale.FromText(c.Title),
		UpdatedAt: c.UpdatedAt,
	}
}

func toContentResponse(c *model.Content) ContentResponse {
	return ContentResponse{
		ContentSummary: toContentSummary(c),
		Body:           locale.FromBody(c.Body),
		CreatedAt:      c.CreatedAt,
	}
}
