package bookings

import (
	"time"

	"aerobook/internal/flights"
)

type BookingResponse struct {
	ID                 uint              `json:"id"`
	BookingReference   string            `json:"booking_reference"`
	UserID             uint              `json:"user_id"`
	FlightID           uint              `json:"flight_id"`
	FlightNumber       string            `json:"flight_number,omitempty"`
	NumberOfPassengers int               `json:"number_of_passengers"`
	TotalAmount        float64           `json:"total_amount"`
	Status             Status            `json:"status"`
	FareClass          flights.FareClass `json:"fare_class"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func toResponse(b *Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		BookingReference:   b.BookingReference,
		UserID:             b.UserID,
		FlightID:           b.FlightID,
		NumberOfPassengers: b.NumberOfPassengers,
		TotalAmount:        b.TotalAmount,
		Status:             b.Status,
		FareClass:          b.FareClass,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func toResponseList(bookings []Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, *toResponse(&bookings[i]))
	}
	return out
}
