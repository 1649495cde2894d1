package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aerobook/internal/flights"
	"aerobook/internal/notifications"
	"aerobook/internal/shared/apperrors"
	"aerobook/internal/users"
	"aerobook/pkg/logger"

	"gorm.io/gorm"
)

const maxReferenceAttempts = 10

type Service interface {
	Create(ctx context.Context, userID uint, req CreateBookingRequest) (*BookingResponse, error)
	Confirm(ctx context.Context, reference string) (*BookingResponse, error)
	Cancel(ctx context.Context, reference string) (*BookingResponse, error)
	Update(ctx context.Context, reference string, req UpdateBookingRequest) (*BookingResponse, error)
	GetByReference(ctx context.Context, reference string) (*BookingResponse, error)
	GetByUser(ctx context.Context, userID uint) ([]BookingResponse, error)
	GetByStatus(ctx context.Context, status string) ([]BookingResponse, error)
	GetPassengers(ctx context.Context, reference string) ([]PassengerRecord, error)
}

type service struct {
	repo         Repository
	flightRepo   flights.Repository
	userRepo     users.Repository
	passengerSvc PassengerService
	events       notifications.Publisher
	refGen       *ReferenceGenerator
	logger       *logger.Logger
}

// NewService wires the booking lifecycle. events may be nil when the
// message broker is disabled; publishing is best-effort either way.
func NewService(repo Repository, flightRepo flights.Repository, userRepo users.Repository, passengerSvc PassengerService, events notifications.Publisher) Service {
	return &service{
		repo:         repo,
		flightRepo:   flightRepo,
		userRepo:     userRepo,
		passengerSvc: passengerSvc,
		events:       events,
		refGen:       NewReferenceGenerator(),
		logger:       logger.GetDefault(),
	}
}

// NewServiceWithGenerator is the test seam for reference generation.
func NewServiceWithGenerator(repo Repository, flightRepo flights.Repository, userRepo users.Repository, passengerSvc PassengerService, events notifications.Publisher, refGen *ReferenceGenerator) Service {
	s := NewService(repo, flightRepo, userRepo, passengerSvc, events).(*service)
	s.refGen = refGen
	return s
}

func (s *service) Create(ctx context.Context, userID uint, req CreateBookingRequest) (*BookingResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user with id %d not found", userID)
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	flight, err := s.flightRepo.GetByID(ctx, req.FlightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("flight with id %d not found", req.FlightID)
		}
		return nil, fmt.Errorf("failed to resolve flight: %w", err)
	}
	if !flight.Active || !flight.Status.Bookable() {
		return nil, apperrors.BookingState("flight %s is not open for booking", flight.FlightNumber)
	}

	fareClass := flights.ParseFareClass(req.FareClass)
	passengerCount := len(req.Passengers)

	// Advisory pre-check; the authoritative check runs again under the
	// row lock in ConsumeSeats.
	if err := flights.RequireAvailability(flight, fareClass, passengerCount); err != nil {
		return nil, err
	}

	totalAmount := flights.PriceForClass(flight, fareClass) * float64(passengerCount)

	reference, err := s.generateReference(ctx)
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		BookingReference:   reference,
		UserID:             user.ID,
		FlightID:           flight.ID,
		NumberOfPassengers: passengerCount,
		TotalAmount:        totalAmount,
		Status:             StatusPending,
		FareClass:          fareClass,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	inputs, err := toPassengerInputs(req.Passengers)
	if err != nil {
		s.rollbackBooking(ctx, booking)
		return nil, err
	}
	if err := s.passengerSvc.CreateForBooking(ctx, booking.ID, inputs); err != nil {
		// Compensating rollback: no partial booking may persist.
		s.rollbackBooking(ctx, booking)
		return nil, fmt.Errorf("failed to create passengers for booking %s: %w", reference, err)
	}

	if err := s.flightRepo.ConsumeSeats(ctx, flight.ID, fareClass, passengerCount); err != nil {
		s.rollbackBooking(ctx, booking)
		return nil, err
	}

	s.logger.LogBookingCreated(ctx, reference, flight.FlightNumber, passengerCount)
	s.publish(ctx, notifications.BookingEvent{
		Type:             notifications.EventBookingCreated,
		BookingReference: reference,
		FlightNumber:     flight.FlightNumber,
		UserEmail:        user.Email,
		FareClass:        string(fareClass),
		Passengers:       passengerCount,
		Amount:           totalAmount,
		OccurredAt:       time.Now(),
	})

	return toResponse(booking), nil
}

// Confirm marks a booking CONFIRMED after payment success. Confirming a
// booking that is already CONFIRMED is a no-op.
func (s *service) Confirm(ctx context.Context, reference string) (*BookingResponse, error) {
	booking, err := s.getBooking(ctx, reference)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case StatusConfirmed:
		s.logger.InfoWithContext(ctx, "booking already confirmed",
			map[string]interface{}{"booking_reference": reference})
		return toResponse(booking), nil
	case StatusCancelled:
		return nil, apperrors.BookingState("booking %s is cancelled and cannot be confirmed", reference)
	}

	booking.Status = StatusConfirmed
	if err := s.repo.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	s.publish(ctx, notifications.BookingEvent{
		Type:             notifications.EventBookingConfirmed,
		BookingReference: reference,
		Passengers:       booking.NumberOfPassengers,
		FareClass:        string(booking.FareClass),
		Amount:           booking.TotalAmount,
		OccurredAt:       time.Now(),
	})
	return toResponse(booking), nil
}

// Cancel transitions a booking to CANCELLED and restores its seats.
func (s *service) Cancel(ctx context.Context, reference string) (*BookingResponse, error) {
	booking, err := s.getBooking(ctx, reference)
	if err != nil {
		return nil, err
	}

	if booking.Status == StatusCancelled {
		return nil, apperrors.BookingState("booking %s is already cancelled", reference)
	}

	booking.Status = StatusCancelled
	if err := s.repo.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if err := s.flightRepo.RestoreSeats(ctx, booking.FlightID, booking.FareClass, booking.NumberOfPassengers); err != nil {
		return nil, fmt.Errorf("failed to restore seats for booking %s: %w", reference, err)
	}

	s.logger.LogBookingCancelled(ctx, reference, booking.NumberOfPassengers)
	s.publish(ctx, notifications.BookingEvent{
		Type:             notifications.EventBookingCancelled,
		BookingReference: reference,
		Passengers:       booking.NumberOfPassengers,
		FareClass:        string(booking.FareClass),
		Amount:           booking.TotalAmount,
		OccurredAt:       time.Now(),
	})
	return toResponse(booking), nil
}

// Update changes the fare class and/or passenger list of a PENDING
// booking. A class or count change releases the old seats and takes the
// new ones; if taking the new seats fails, the old ones are re-consumed.
func (s *service) Update(ctx context.Context, reference string, req UpdateBookingRequest) (*BookingResponse, error) {
	booking, err := s.getBooking(ctx, reference)
	if err != nil {
		return nil, err
	}
	if booking.Status != StatusPending {
		return nil, apperrors.BookingState("booking %s is %s; only pending bookings can be updated", reference, booking.Status)
	}

	flight, err := s.flightRepo.GetByID(ctx, booking.FlightID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve flight: %w", err)
	}

	newClass := booking.FareClass
	if req.FareClass != "" {
		newClass = flights.ParseFareClass(req.FareClass)
	}
	newCount := booking.NumberOfPassengers

	// Validate the replacement passenger list before touching inventory.
	var inputs []PassengerInput
	if len(req.Passengers) > 0 {
		newCount = len(req.Passengers)
		inputs, err = toPassengerInputs(req.Passengers)
		if err != nil {
			return nil, err
		}
	}

	oldClass, oldCount := booking.FareClass, booking.NumberOfPassengers
	swapped := newClass != oldClass || newCount != oldCount
	if swapped {
		if err := s.flightRepo.RestoreSeats(ctx, flight.ID, oldClass, oldCount); err != nil {
			return nil, fmt.Errorf("failed to release seats: %w", err)
		}
		if err := s.flightRepo.ConsumeSeats(ctx, flight.ID, newClass, newCount); err != nil {
			// Put the old seats back so the update leaves inventory as found.
			if reErr := s.flightRepo.ConsumeSeats(ctx, flight.ID, oldClass, oldCount); reErr != nil {
				s.logger.ErrorWithContext(ctx, "failed to re-consume seats after aborted booking update", reErr,
					map[string]interface{}{"booking_reference": reference})
			}
			return nil, err
		}
	}

	if len(inputs) > 0 {
		if err := s.passengerSvc.DeleteForBooking(ctx, booking.ID); err != nil {
			s.revertSeatSwap(ctx, flight.ID, oldClass, oldCount, newClass, newCount, swapped, reference)
			return nil, fmt.Errorf("failed to replace passengers: %w", err)
		}
		if err := s.passengerSvc.CreateForBooking(ctx, booking.ID, inputs); err != nil {
			s.revertSeatSwap(ctx, flight.ID, oldClass, oldCount, newClass, newCount, swapped, reference)
			return nil, fmt.Errorf("failed to replace passengers: %w", err)
		}
	}

	booking.FareClass = newClass
	booking.NumberOfPassengers = newCount
	booking.TotalAmount = flights.PriceForClass(flight, newClass) * float64(newCount)
	if err := s.repo.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return toResponse(booking), nil
}

func (s *service) GetByReference(ctx context.Context, reference string) (*BookingResponse, error) {
	booking, err := s.getBooking(ctx, reference)
	if err != nil {
		return nil, err
	}
	return toResponse(booking), nil
}

func (s *service) GetByUser(ctx context.Context, userID uint) ([]BookingResponse, error) {
	bookings, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return toResponseList(bookings), nil
}

func (s *service) GetByStatus(ctx context.Context, status string) ([]BookingResponse, error) {
	parsed, ok := ParseStatus(status)
	if !ok {
		return nil, apperrors.Validation("invalid booking status: %s", status)
	}
	bookings, err := s.repo.GetByStatus(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return toResponseList(bookings), nil
}

func (s *service) GetPassengers(ctx context.Context, reference string) ([]PassengerRecord, error) {
	booking, err := s.getBooking(ctx, reference)
	if err != nil {
		return nil, err
	}
	return s.passengerSvc.ListForBooking(ctx, booking.ID)
}

func (s *service) getBooking(ctx context.Context, reference string) (*Booking, error) {
	booking, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking with reference %s not found", reference)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

func (s *service) generateReference(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		reference := s.refGen.Generate()
		exists, err := s.repo.ExistsByReference(ctx, reference)
		if err != nil {
			return "", fmt.Errorf("failed to check booking reference: %w", err)
		}
		if !exists {
			return reference, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique booking reference after %d attempts", maxReferenceAttempts)
}

// revertSeatSwap undoes a completed seat swap when a later step of an
// update fails, so inventory is left exactly as the update found it.
func (s *service) revertSeatSwap(ctx context.Context, flightID uint, oldClass flights.FareClass, oldCount int, newClass flights.FareClass, newCount int, swapped bool, reference string) {
	if !swapped {
		return
	}
	if err := s.flightRepo.RestoreSeats(ctx, flightID, newClass, newCount); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to release seats after aborted booking update", err,
			map[string]interface{}{"booking_reference": reference})
	}
	if err := s.flightRepo.ConsumeSeats(ctx, flightID, oldClass, oldCount); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to re-consume seats after aborted booking update", err,
			map[string]interface{}{"booking_reference": reference})
	}
}

func (s *service) rollbackBooking(ctx context.Context, booking *Booking) {
	if err := s.passengerSvc.DeleteForBooking(ctx, booking.ID); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to delete passengers during booking rollback", err,
			map[string]interface{}{"booking_reference": booking.BookingReference})
	}
	if err := s.repo.Delete(ctx, booking.ID); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to delete booking during rollback", err,
			map[string]interface{}{"booking_reference": booking.BookingReference})
	}
}

func (s *service) publish(ctx context.Context, event notifications.BookingEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishBookingEvent(ctx, event); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to publish booking event", err,
			map[string]interface{}{"event_type": event.Type, "booking_reference": event.BookingReference})
	}
}

func toPassengerInputs(reqs []PassengerRequest) ([]PassengerInput, error) {
	inputs := make([]PassengerInput, 0, len(reqs))
	for _, p := range reqs {
		dob, err := time.Parse("2006-01-02", p.DateOfBirth)
		if err != nil {
			return nil, apperrors.Validation("date_of_birth must be in YYYY-MM-DD format")
		}
		inputs = append(inputs, PassengerInput{
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			DateOfBirth:    dob,
			Gender:         p.Gender,
			PassportNumber: p.PassportNumber,
			Nationality:    p.Nationality,
		})
	}
	return inputs, nil
}
