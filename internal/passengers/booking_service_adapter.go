package passengers

import (
	"context"

	"aerobook/internal/bookings"
)

// BookingAdapter exposes this package's service through the
// PassengerService interface the bookings package declares, keeping the
// dependency one-way (passengers -> bookings).
type BookingAdapter struct {
	service Service
}

func NewBookingAdapter(service Service) *BookingAdapter {
	return &BookingAdapter{service: service}
}

func (a *BookingAdapter) CreateForBooking(ctx context.Context, bookingID uint, inputs []bookings.PassengerInput) error {
	return a.service.CreateForBooking(ctx, bookingID, inputs)
}

func (a *BookingAdapter) ListForBooking(ctx context.Context, bookingID uint) ([]bookings.PassengerRecord, error) {
	list, err := a.service.ListForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	records := make([]bookings.PassengerRecord, 0, len(list))
	for _, p := range list {
		records = append(records, bookings.PassengerRecord{
			ID:             p.ID,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			DateOfBirth:    p.DateOfBirth,
			Gender:         p.Gender,
			PassportNumber: p.PassportNumber,
			Nationality:    p.Nationality,
			SeatNumber:     p.SeatNumber,
			Type:           string(p.Type),
		})
	}
	return records, nil
}

func (a *BookingAdapter) DeleteForBooking(ctx context.Context, bookingID uint) error {
	return a.service.DeleteForBooking(ctx, bookingID)
}
