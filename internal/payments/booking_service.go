package payments

import "context"

// BookingSummary mirrors the booking fields the payment flow needs.
type BookingSummary struct {
	ID          uint
	Reference   string
	Status      string
	TotalAmount float64
}

// BookingService is implemented by an adapter over the bookings package
// so the orchestration here stays decoupled from its concrete service.
type BookingService interface {
	GetForPayment(ctx context.Context, reference string) (*BookingSummary, error)
	ReferenceForBookingID(ctx context.Context, bookingID uint) (string, error)
	Confirm(ctx context.Context, reference string) error
	Cancel(ctx context.Context, reference string) error
}
