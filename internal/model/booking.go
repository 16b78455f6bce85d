package model

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// bookingTransitions lists the statuses reachable from each status
var bookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

// Booking is a reservation request for a product
type Booking struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	ProductID     uint32    `gorm:"column:product_id;not null;index:idx_booking_product"`
	ProductTitle  string    `gorm:"column:product_title;type:VARCHAR2(500)"` // 생성 시점의 상품명
	CustomerName  string    `gorm:"column:customer_name;type:VARCHAR2(100);not null"`
	CustomerEmail string    `gorm:"column:customer_email;type:VARCHAR2(255);not null"`
	CustomerPhone string    `gorm:"column:customer_phone;type:VARCHAR2(50)"`
	TravelDate    time.Time `gorm:"column:travel_date;not null;index:idx_booking_travel_date"`
	Adults        int       `gorm:"column:adults;not null"`
	Children      int       `gorm:"column:children;not null"`
	Status        string    `gorm:"column:status;type:VARCHAR2(20);not null;index:idx_booking_status"`
	AgentID       *uint32   `gorm:"column:agent_id"`
	Memo          string    `gorm:"column:memo;type:VARCHAR2(2000)"`

	BaseEntity
}

func (*Booking) TableName() string {
	return "booking"
}

// CanTransitionTo reports whether status may follow the current status
func (b *Booking) CanTransitionTo(status string) bool {
	for _, next := range bookingTransitions[b.Status] {
		if next == status {
			return true
		}
	}
	return false
}
