package passengers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aerobook/internal/bookings"
	"aerobook/internal/shared/apperrors"

	"gorm.io/gorm"
)

const maxPassengerAge = 120

type Service interface {
	CreateForBooking(ctx context.Context, bookingID uint, inputs []bookings.PassengerInput) error
	ListForBooking(ctx context.Context, bookingID uint) ([]Passenger, error)
	DeleteForBooking(ctx context.Context, bookingID uint) error
	GetByID(ctx context.Context, id uint) (*PassengerResponse, error)
	Update(ctx context.Context, id uint, req UpdatePassengerRequest) (*PassengerResponse, error)
	Delete(ctx context.Context, id uint) error
	AssignSeat(ctx context.Context, id uint, seatNumber string) (*PassengerResponse, error)
}

type service struct {
	repo        Repository
	bookingRepo bookings.Repository
}

func NewService(repo Repository, bookingRepo bookings.Repository) Service {
	return &service{repo: repo, bookingRepo: bookingRepo}
}

// CreateForBooking validates the whole batch before writing any row, so
// a failure anywhere leaves no partial passenger state behind.
func (s *service) CreateForBooking(ctx context.Context, bookingID uint, inputs []bookings.PassengerInput) error {
	existing, err := s.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to load existing passengers: %w", err)
	}

	seen := make(map[string]bool, len(existing)+len(inputs))
	for _, p := range existing {
		seen[strings.ToLower(p.PassportNumber)] = true
	}

	batch := make([]Passenger, 0, len(inputs))
	for _, in := range inputs {
		passenger, err := buildPassenger(bookingID, in)
		if err != nil {
			return err
		}

		key := strings.ToLower(passenger.PassportNumber)
		if seen[key] {
			return apperrors.Conflict("duplicate passport number %s in booking", passenger.PassportNumber)
		}
		seen[key] = true

		batch = append(batch, *passenger)
	}

	for i := range batch {
		if err := s.repo.Create(ctx, &batch[i]); err != nil {
			return fmt.Errorf("failed to persist passenger: %w", err)
		}
	}
	return nil
}

func (s *service) ListForBooking(ctx context.Context, bookingID uint) ([]Passenger, error) {
	return s.repo.FindByBookingID(ctx, bookingID)
}

func (s *service) DeleteForBooking(ctx context.Context, bookingID uint) error {
	return s.repo.DeleteByBookingID(ctx, bookingID)
}

func (s *service) GetByID(ctx context.Context, id uint) (*PassengerResponse, error) {
	passenger, err := s.getPassenger(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(passenger), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdatePassengerRequest) (*PassengerResponse, error) {
	passenger, err := s.getPassenger(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requirePendingBooking(ctx, passenger.BookingID); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		passenger.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		passenger.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperrors.Validation("date_of_birth must be in YYYY-MM-DD format")
		}
		passenger.DateOfBirth = dob
	}
	if req.Gender != nil {
		passenger.Gender = strings.ToUpper(strings.TrimSpace(*req.Gender))
	}
	if req.PassportNumber != nil {
		newPassport := strings.TrimSpace(*req.PassportNumber)
		others, err := s.repo.FindByBookingID(ctx, passenger.BookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to check passport uniqueness: %w", err)
		}
		for _, other := range others {
			if other.ID != passenger.ID && strings.EqualFold(other.PassportNumber, newPassport) {
				return nil, apperrors.Conflict("duplicate passport number %s in booking", newPassport)
			}
		}
		passenger.PassportNumber = newPassport
	}
	if req.Nationality != nil {
		passenger.Nationality = strings.TrimSpace(*req.Nationality)
	}

	if err := validatePassenger(passenger); err != nil {
		return nil, err
	}
	passenger.Type = TypeForAge(passenger.Age(time.Now()))

	if err := s.repo.Save(ctx, passenger); err != nil {
		return nil, fmt.Errorf("failed to update passenger: %w", err)
	}
	return toResponse(passenger), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	passenger, err := s.getPassenger(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requirePendingBooking(ctx, passenger.BookingID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete passenger: %w", err)
	}
	return nil
}

// AssignSeat normalizes the seat number and rejects a seat already held
// by any passenger on the same flight, across bookings.
func (s *service) AssignSeat(ctx context.Context, id uint, seatNumber string) (*PassengerResponse, error) {
	seat := strings.ToUpper(strings.TrimSpace(seatNumber))
	if seat == "" {
		return nil, apperrors.Validation("seat number is required")
	}

	passenger, err := s.getPassenger(ctx, id)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, passenger.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve booking: %w", err)
	}

	onFlight, err := s.repo.FindByFlightID(ctx, booking.FlightID)
	if err != nil {
		return nil, fmt.Errorf("failed to check seat availability: %w", err)
	}
	for _, other := range onFlight {
		if other.ID != passenger.ID && other.SeatNumber != nil && *other.SeatNumber == seat {
			return nil, apperrors.Conflict("seat %s is already assigned on this flight", seat)
		}
	}

	passenger.SeatNumber = &seat
	if err := s.repo.Save(ctx, passenger); err != nil {
		return nil, fmt.Errorf("failed to assign seat: %w", err)
	}
	return toResponse(passenger), nil
}

func (s *service) getPassenger(ctx context.Context, id uint) (*Passenger, error) {
	passenger, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("passenger with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}
	return passenger, nil
}

func (s *service) requirePendingBooking(ctx context.Context, bookingID uint) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to resolve booking: %w", err)
	}
	if booking.Status != bookings.StatusPending {
		return apperrors.BookingState("booking %s is %s; passengers can only change while pending",
			booking.BookingReference, booking.Status)
	}
	return nil
}

func buildPassenger(bookingID uint, in bookings.PassengerInput) (*Passenger, error) {
	passenger := &Passenger{
		BookingID:      bookingID,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		DateOfBirth:    in.DateOfBirth,
		Gender:         strings.ToUpper(strings.TrimSpace(in.Gender)),
		PassportNumber: strings.TrimSpace(in.PassportNumber),
		Nationality:    strings.TrimSpace(in.Nationality),
	}
	if err := validatePassenger(passenger); err != nil {
		return nil, err
	}
	passenger.Type = TypeForAge(passenger.Age(time.Now()))
	return passenger, nil
}

// validatePassenger checks fields in a fixed order and fails on the
// first violation.
func validatePassenger(p *Passenger) error {
	if p.FirstName == "" {
		return apperrors.Validation("passenger first name is required")
	}
	if p.LastName == "" {
		return apperrors.Validation("passenger last name is required")
	}
	if p.DateOfBirth.IsZero() {
		return apperrors.Validation("passenger date of birth is required")
	}
	if p.DateOfBirth.After(time.Now()) {
		return apperrors.Validation("passenger date of birth cannot be in the future")
	}
	if p.PassportNumber == "" {
		return apperrors.Validation("passenger passport number is required")
	}
	if p.Nationality == "" {
		return apperrors.Validation("passenger nationality is required")
	}
	if p.Age(time.Now()) > maxPassengerAge {
		return apperrors.Validation("passenger age cannot exceed %d years", maxPassengerAge)
	}
	return nil
}
