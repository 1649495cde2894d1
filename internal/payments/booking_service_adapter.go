package payments

import (
	"context"

	"aerobook/internal/bookings"
)

// bookingServiceAdapter bridges the bookings service into the
// BookingService contract this package consumes.
type bookingServiceAdapter struct {
	service bookings.Service
	repo    bookings.Repository
}

func NewBookingServiceAdapter(service bookings.Service, repo bookings.Repository) BookingService {
	return &bookingServiceAdapter{service: service, repo: repo}
}

func (a *bookingServiceAdapter) ReferenceForBookingID(ctx context.Context, bookingID uint) (string, error) {
	booking, err := a.repo.GetByID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	return booking.BookingReference, nil
}

func (a *bookingServiceAdapter) GetForPayment(ctx context.Context, reference string) (*BookingSummary, error) {
	booking, err := a.service.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return &BookingSummary{
		ID:          booking.ID,
		Reference:   booking.BookingReference,
		Status:      string(booking.Status),
		TotalAmount: booking.TotalAmount,
	}, nil
}

func (a *bookingServiceAdapter) Confirm(ctx context.Context, reference string) error {
	_, err := a.service.Confirm(ctx, reference)
	return err
}

func (a *bookingServiceAdapter) Cancel(ctx context.Context, reference string) error {
	_, err := a.service.Cancel(ctx, reference)
	return err
}
