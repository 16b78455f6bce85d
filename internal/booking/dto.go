package booking

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
)

const dateLayout = "2006-01-02"

type ListBookingsQuery struct {
	Status    string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	ProductID uint32 `form:"productId"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type BookingRequest struct {
	ProductID     uint32  `json:"productId" binding:"required"`
	CustomerName  string  `json:"customerName" binding:"required,max=100"`
	CustomerEmail string  `json:"customerEmail" binding:"required,email,max=255"`
	CustomerPhone string  `json:"customerPhone" binding:"omitempty,phone_intl"`
	TravelDate    string  `json:"travelDate" binding:"required,datetime=2006-01-02"`
	Adults        int     `json:"adults" binding:"required,min=1,max=100"`
	Children      int     `json:"children" binding:"min=0,max=100"`
	AgentID       *uint32 `json:"agentId"`
	Memo          string  `json:"memo" binding:"max=2000"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type BookingResponse struct {
	ID            uint32    `json:"id"`
	ProductID     uint32    `json:"productId"`
	ProductTitle  string    `json:"productTitle"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	TravelDate    string    `json:"travelDate"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	Status        string    `json:"status"`
	AgentID       *uint32   `json:"agentId"`
	Memo          string    `json:"memo"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// apply copies the request onto b. TravelDate must already be validated by binding.
func (r *BookingRequest) apply(b *model.Booking) error {
	travelDate, err := time.Parse(dateLayout, r.TravelDate)
	if err != nil {
		return err
	}

	b.ProductID = r.ProductID
	b.CustomerName = r.CustomerName
	b.CustomerEmail = r.CustomerEmail
	b.CustomerPhone = r.CustomerPhone
	b.TravelDate = travelDate
	b.Adults = r.Adults
	b.Children = r.Children
	b.AgentID = r.AgentID
	b.Memo = r.Memo
	return nil
}

func toBookingResponse(b *model.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ProductID:     b.ProductID,
		ProductTitle:  b.ProductTitle,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		TravelDate:    b.TravelDate.Format(dateLayout),
		Adults:        b.Adults,
		Children:      b.Children,
		Status:        b.Status,
		AgentID:       b.AgentID,
		Memo:          b.Memo,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
