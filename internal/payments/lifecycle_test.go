package payments

import (
	"context"
	"testing"
	"time"

	"aerobook/internal/bookings"
	"aerobook/internal/flights"
	"aerobook/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory stores wiring the real bookings and payments services
// together, so the full book -> pay -> refund path runs without a
// database.

type memBookingRepo struct {
	nextID uint
	byID   map[uint]*bookings.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{nextID: 1, byID: map[uint]*bookings.Booking{}}
}

func (r *memBookingRepo) Create(ctx context.Context, booking *bookings.Booking) error {
	booking.ID = r.nextID
	r.nextID++
	r.byID[booking.ID] = booking
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id uint) (*bookings.Booking, error) {
	booking, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return booking, nil
}

func (r *memBookingRepo) GetByReference(ctx context.Context, reference string) (*bookings.Booking, error) {
	for _, booking := range r.byID {
		if booking.BookingReference == reference {
			return booking, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memBookingRepo) GetByUserID(ctx context.Context, userID uint) ([]bookings.Booking, error) {
	var out []bookings.Booking
	for _, booking := range r.byID {
		if booking.UserID == userID {
			out = append(out, *booking)
		}
	}
	return out, nil
}

func (r *memBookingRepo) GetByStatus(ctx context.Context, status bookings.Status) ([]bookings.Booking, error) {
	var out []bookings.Booking
	for _, booking := range r.byID {
		if booking.Status == status {
			out = append(out, *booking)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	_, err := r.GetByReference(ctx, reference)
	return err == nil, nil
}

func (r *memBookingRepo) Save(ctx context.Context, booking *bookings.Booking) error {
	r.byID[booking.ID] = booking
	return nil
}

func (r *memBookingRepo) Delete(ctx context.Context, id uint) error {
	delete(r.byID, id)
	return nil
}

type memFlightRepo struct {
	flight *flights.Flight
}

func (r *memFlightRepo) Create(ctx context.Context, flight *flights.Flight) error { return nil }

func (r *memFlightRepo) GetByID(ctx context.Context, id uint) (*flights.Flight, error) {
	if r.flight == nil || r.flight.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.flight, nil
}

func (r *memFlightRepo) GetByNumber(ctx context.Context, flightNumber string) (*flights.Flight, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *memFlightRepo) ExistsByNumber(ctx context.Context, flightNumber string) (bool, error) {
	return false, nil
}

func (r *memFlightRepo) GetAll(ctx context.Context) ([]flights.Flight, error) { return nil, nil }

func (r *memFlightRepo) Search(ctx context.Context, criteria flights.SearchCriteria) ([]flights.Flight, error) {
	return nil, nil
}

func (r *memFlightRepo) GetUpcoming(ctx context.Context, from time.Time) ([]flights.Flight, error) {
	return nil, nil
}

func (r *memFlightRepo) GetByAirlineCode(ctx context.Context, airlineCode string) ([]flights.Flight, error) {
	return nil, nil
}

func (r *memFlightRepo) Save(ctx context.Context, flight *flights.Flight) error { return nil }

func (r *memFlightRepo) Delete(ctx context.Context, id uint) error { return nil }

func (r *memFlightRepo) ConsumeSeats(ctx context.Context, flightID uint, class flights.FareClass, count int) error {
	if err := flights.RequireAvailability(r.flight, class, count); err != nil {
		return err
	}
	flights.AdjustSeats(r.flight, class, count, false)
	return nil
}

func (r *memFlightRepo) RestoreSeats(ctx context.Context, flightID uint, class flights.FareClass, count int) error {
	flights.AdjustSeats(r.flight, class, count, true)
	return nil
}

type memUserRepo struct {
	user *users.User
}

func (r *memUserRepo) GetByID(ctx context.Context, id uint) (*users.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.user, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *users.User) error { return nil }

func (r *memUserRepo) Update(ctx context.Context, user *users.User) error { return nil }

type noopPassengerService struct {
	created int
	deleted int
}

func (s *noopPassengerService) CreateForBooking(ctx context.Context, bookingID uint, inputs []bookings.PassengerInput) error {
	s.created += len(inputs)
	return nil
}

func (s *noopPassengerService) ListForBooking(ctx context.Context, bookingID uint) ([]bookings.PassengerRecord, error) {
	return nil, nil
}

func (s *noopPassengerService) DeleteForBooking(ctx context.Context, bookingID uint) error {
	s.deleted++
	return nil
}

type memPaymentRepo struct {
	nextID uint
	byTxn  map[string]*Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{nextID: 1, byTxn: map[string]*Payment{}}
}

func (r *memPaymentRepo) Create(ctx context.Context, payment *Payment) error {
	payment.ID = r.nextID
	r.nextID++
	r.byTxn[payment.TransactionID] = payment
	return nil
}

func (r *memPaymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error) {
	payment, ok := r.byTxn[transactionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return payment, nil
}

func (r *memPaymentRepo) GetByBookingID(ctx context.Context, bookingID uint) ([]Payment, error) {
	var out []Payment
	for _, payment := range r.byTxn {
		if payment.BookingID == bookingID {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) GetByStatus(ctx context.Context, status Status) ([]Payment, error) {
	var out []Payment
	for _, payment := range r.byTxn {
		if payment.Status == status {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) GetByDateRange(ctx context.Context, from, to time.Time) ([]Payment, error) {
	var out []Payment
	for _, payment := range r.byTxn {
		if !payment.CreatedAt.Before(from) && payment.CreatedAt.Before(to) {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	_, ok := r.byTxn[transactionID]
	return ok, nil
}

func (r *memPaymentRepo) HasSuccessfulPayment(ctx context.Context, bookingID uint) (bool, error) {
	for _, payment := range r.byTxn {
		if payment.BookingID == bookingID && payment.Status == StatusSuccess {
			return true, nil
		}
	}
	return false, nil
}

func (r *memPaymentRepo) Save(ctx context.Context, payment *Payment) error {
	r.byTxn[payment.TransactionID] = payment
	return nil
}

func (r *memPaymentRepo) Delete(ctx context.Context, id uint) error {
	for txn, payment := range r.byTxn {
		if payment.ID == id {
			delete(r.byTxn, txn)
		}
	}
	return nil
}

func TestBookPayRefund_EndToEnd(t *testing.T) {
	ctx := context.Background()

	flight := &flights.Flight{
		ID:              1,
		FlightNumber:    "AB101",
		EconomySeats:    5,
		BusinessSeats:   2,
		FirstClassSeats: 1,
		BasePrice:       1000.0,
		Status:          flights.StatusScheduled,
		Active:          true,
	}
	flightRepo := &memFlightRepo{flight: flight}
	userRepo := &memUserRepo{user: &users.User{ID: 3, Email: "asha.nair@example.com"}}
	bookingRepo := newMemBookingRepo()
	passengerSvc := &noopPassengerService{}

	bookingService := bookings.NewService(bookingRepo, flightRepo, userRepo, passengerSvc, nil)

	paymentRepo := newMemPaymentRepo()
	gateway := NewMockGatewaySeeded(0.0, 0, 1)
	paymentService := NewService(paymentRepo, NewBookingServiceAdapter(bookingService, bookingRepo), gateway, nil)

	// Book two economy seats.
	booking, err := bookingService.Create(ctx, 3, bookings.CreateBookingRequest{
		FlightID:  1,
		FareClass: "economy",
		Passengers: []bookings.PassengerRequest{
			{FirstName: "Asha", LastName: "Nair", DateOfBirth: "1990-04-12", PassportNumber: "P1234567", Nationality: "Indian"},
			{FirstName: "Rohan", LastName: "Mehta", DateOfBirth: "1988-09-30", PassportNumber: "P7654321", Nationality: "Indian"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusPending, booking.Status)
	assert.Equal(t, 2000.0, booking.TotalAmount)
	assert.Equal(t, 3, flight.EconomySeats)
	assert.Equal(t, 2, passengerSvc.created)

	// Pay; the booking flips to CONFIRMED.
	payment, err := paymentService.ProcessPayment(ctx, ProcessPaymentRequest{
		BookingReference: booking.BookingReference,
		Amount:           booking.TotalAmount,
		Method:           "CREDIT_CARD",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, payment.Status)

	confirmed, err := bookingService.GetByReference(ctx, booking.BookingReference)
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusConfirmed, confirmed.Status)

	// Paying again is rejected.
	_, err = paymentService.ProcessPayment(ctx, ProcessPaymentRequest{
		BookingReference: booking.BookingReference,
		Amount:           booking.TotalAmount,
		Method:           "CREDIT_CARD",
	})
	assert.Error(t, err)

	// Refund; the booking is cancelled and the seats come back.
	refunded, err := paymentService.RefundPayment(ctx, payment.TransactionID, RefundPaymentRequest{})
	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, refunded.Status)
	assert.Equal(t, 2000.0, refunded.RefundedAmount)

	cancelled, err := bookingService.GetByReference(ctx, booking.BookingReference)
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusCancelled, cancelled.Status)
	assert.Equal(t, 5, flight.EconomySeats)
}
