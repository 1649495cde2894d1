package flights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aerobook/internal/shared/apperrors"
	"aerobook/internal/shared/constants"
	"aerobook/pkg/cache"
	"aerobook/pkg/logger"

	"gorm.io/gorm"
)

type SearchCriteria struct {
	DepartureAirportID uint
	ArrivalAirportID   uint
	DepartureDate      time.Time
	FareClass          FareClass
	PassengerCount     int
}

type Repository interface {
	Create(ctx context.Context, flight *Flight) error
	GetByID(ctx context.Context, id uint) (*Flight, error)
	GetByNumber(ctx context.Context, flightNumber string) (*Flight, error)
	ExistsByNumber(ctx context.Context, flightNumber string) (bool, error)
	GetAll(ctx context.Context) ([]Flight, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]Flight, error)
	GetUpcoming(ctx context.Context, from time.Time) ([]Flight, error)
	GetByAirlineCode(ctx context.Context, airlineCode string) ([]Flight, error)
	Save(ctx context.Context, flight *Flight) error
	Delete(ctx context.Context, id uint) error

	// Seat-counter mutation. Both run inside a transaction holding a
	// FOR UPDATE lock on the flight row so two concurrent bookings
	// cannot both pass the availability check before either decrements.
	ConsumeSeats(ctx context.Context, flightID uint, class FareClass, count int) error
	RestoreSeats(ctx context.Context, flightID uint, class FareClass, count int) error
}

type repository struct {
	db    *gorm.DB
	cache cache.Service
	log   *logger.Logger
}

// NewRepository builds the flight store. cacheService may be nil; seat
// mutations then skip cache invalidation.
func NewRepository(db *gorm.DB, cacheService cache.Service) Repository {
	return &repository{db: db, cache: cacheService, log: logger.GetDefault()}
}

func (r *repository) Create(ctx context.Context, flight *Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Flight, error) {
	var flight Flight
	if err := r.db.WithContext(ctx).First(&flight, id).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *repository) GetByNumber(ctx context.Context, flightNumber string) (*Flight, error) {
	var flight Flight
	if err := r.db.WithContext(ctx).Where("flight_number = ?", flightNumber).First(&flight).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *repository) ExistsByNumber(ctx context.Context, flightNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Flight{}).Where("flight_number = ?", flightNumber).Count(&count).Error
	return count > 0, err
}

func (r *repository) GetAll(ctx context.Context) ([]Flight, error) {
	var flights []Flight
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("departure_time asc").Find(&flights).Error
	return flights, err
}

// Search returns bookable direct flights between two airports on a
// calendar day with enough seats in the requested class. Connection
// routing is out of scope; every flight is treated as direct.
func (r *repository) Search(ctx context.Context, criteria SearchCriteria) ([]Flight, error) {
	dayStart := criteria.DepartureDate.Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	seatColumn := "economy_seats"
	switch criteria.FareClass {
	case FareBusiness:
		seatColumn = "business_seats"
	case FareFirst:
		seatColumn = "first_class_seats"
	}

	var flights []Flight
	err := r.db.WithContext(ctx).
		Where("departure_airport_id = ?", criteria.DepartureAirportID).
		Where("arrival_airport_id = ?", criteria.ArrivalAirportID).
		Where("departure_time >= ? AND departure_time < ?", dayStart, dayEnd).
		Where("status IN ?", []Status{StatusScheduled, StatusDelayed}).
		Where("active = ?", true).
		Where(seatColumn+" >= ?", criteria.PassengerCount).
		Order("departure_time asc").
		Find(&flights).Error
	return flights, err
}

func (r *repository) GetUpcoming(ctx context.Context, from time.Time) ([]Flight, error) {
	var flights []Flight
	err := r.db.WithContext(ctx).
		Where("departure_time > ?", from).
		Where("status IN ?", []Status{StatusScheduled, StatusDelayed, StatusBoarding}).
		Where("active = ?", true).
		Order("departure_time asc").
		Find(&flights).Error
	return flights, err
}

func (r *repository) GetByAirlineCode(ctx context.Context, airlineCode string) ([]Flight, error) {
	var flights []Flight
	err := r.db.WithContext(ctx).
		Joins("JOIN airlines ON airlines.id = flights.airline_id").
		Where("airlines.code = ?", airlineCode).
		Where("flights.active = ?", true).
		Order("flights.departure_time asc").
		Find(&flights).Error
	return flights, err
}

func (r *repository) Save(ctx context.Context, flight *Flight) error {
	return r.db.WithContext(ctx).Save(flight).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&Flight{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ConsumeSeats decrements the class counter for flightID by count,
// re-checking availability under a row lock. The lock closes the window
// where two concurrent bookings both observe enough seats.
func (r *repository) ConsumeSeats(ctx context.Context, flightID uint, class FareClass, count int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var flight Flight
		err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&flight, flightID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("flight with id %d not found", flightID)
			}
			return fmt.Errorf("failed to lock flight: %w", err)
		}

		if err := RequireAvailability(&flight, class, count); err != nil {
			return err
		}

		AdjustSeats(&flight, class, count, false)
		if err := tx.Save(&flight).Error; err != nil {
			return fmt.Errorf("failed to persist seat counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.invalidateFlightCaches(ctx)
	return nil
}

// RestoreSeats increments the class counter for flightID by count under
// the same row lock as ConsumeSeats.
func (r *repository) RestoreSeats(ctx context.Context, flightID uint, class FareClass, count int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var flight Flight
		err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&flight, flightID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("flight with id %d not found", flightID)
			}
			return fmt.Errorf("failed to lock flight: %w", err)
		}

		AdjustSeats(&flight, class, count, true)
		if err := tx.Save(&flight).Error; err != nil {
			return fmt.Errorf("failed to persist seat counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.invalidateFlightCaches(ctx)
	return nil
}

// invalidateFlightCaches drops cached flight responses after a seat
// counter change so availability reads are not served stale.
func (r *repository) invalidateFlightCaches(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_FLIGHT_ALL); err != nil {
		r.log.WarnContext(ctx, "failed to invalidate flight caches after seat change", "error", err)
	}
}
