package bookings

import (
	"time"

	"aerobook/internal/flights"
)

// Booking is the lifecycle root: it owns its passengers and at most one
// meaningful payment. Related entities are referenced by id; the
// human-facing key is BookingReference.
type Booking struct {
	ID                 uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	BookingReference   string            `json:"booking_reference" gorm:"uniqueIndex;size:20;not null"`
	UserID             uint              `json:"user_id" gorm:"not null;index"`
	FlightID           uint              `json:"flight_id" gorm:"not null;index"`
	NumberOfPassengers int               `json:"number_of_passengers" gorm:"not null"`
	TotalAmount        float64           `json:"total_amount" gorm:"not null"`
	Status             Status            `json:"status" gorm:"not null;default:'PENDING';index"`
	FareClass          flights.FareClass `json:"fare_class" gorm:"not null;default:'ECONOMY'"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
