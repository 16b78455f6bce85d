package agent

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
)

type ListAgentsQuery struct {
	Active *bool  `form:"active"`
	Q      string `form:"q" binding:"max=100"`
}

type AgentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	CompanyName string `json:"companyName" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,phone_intl"`
	Country     string `json:"country" binding:"max=50"`
	LogoURL     string `json:"logoUrl" binding:"max=1000"`
	LogoPath    string `json:"logoPath" binding:"omitempty,storage_path,max=500"`
	IsActive    *bool  `json:"isActive"`
	Memo        string `json:"memo" binding:"max=2000"`
}

type AgentResponse struct {
	ID          uint32    `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Country     string    `json:"country"`
	LogoURL     string    `json:"logoUrl"`
	LogoPath    string    `json:"logoPath"`
	IsActive    bool      `json:"isActive"`
	Memo        string    `json:"memo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r *AgentRequest) apply(a *model.TravelAgent) {
	a.Name = r.Name
	a.CompanyName = r.CompanyName
	a.Email = r.Email
	a.PhoneNumber = r.PhoneNumber
	a.Country = r.Country
	a.Logo = model.StoredFile{URL: r.LogoURL, Path: r.LogoPath}
	a.Memo = r.Memo
	if r.IsActive != nil {
		a.IsActive = *r.IsActive
	}
}

func toAgentResponse(a *model.TravelAgent) AgentResponse {
	return AgentResponse{
		ID:          a.ID,
		Name:        a.Name,
		CompanyName: a.CompanyName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Country:     a.Country,
		LogoURL:     a.Logo.URL,
		LogoPath:    a.Logo.Path,
		IsActive:    a.IsActive,
		Memo:        a.Memo,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
