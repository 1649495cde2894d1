package passengers

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, passenger *Passenger) error
	GetByID(ctx context.Context, id uint) (*Passenger, error)
	FindByBookingID(ctx context.Context, bookingID uint) ([]Passenger, error)
	FindByFlightID(ctx context.Context, flightID uint) ([]Passenger, error)
	FindByPassportNumber(ctx context.Context, passport string) ([]Passenger, error)
	Save(ctx context.Context, passenger *Passenger) error
	Delete(ctx context.Context, id uint) error
	DeleteByBookingID(ctx context.Context, bookingID uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, passenger *Passenger) error {
	return r.db.WithContext(ctx).Create(passenger).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Passenger, error) {
	var passenger Passenger
	if err := r.db.WithContext(ctx).First(&passenger, id).Error; err != nil {
		return nil, err
	}
	return &passenger, nil
}

func (r *repository) FindByBookingID(ctx context.Context, bookingID uint) ([]Passenger, error) {
	var passengers []Passenger
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("id asc").Find(&passengers).Error
	return passengers, err
}

// FindByFlightID joins through bookings: seat-conflict checks span
// every booking on the flight, not just the passenger's own.
func (r *repository) FindByFlightID(ctx context.Context, flightID uint) ([]Passenger, error) {
	var passengers []Passenger
	err := r.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = passengers.booking_id").
		Where("bookings.flight_id = ?", flightID).
		Where("bookings.status <> ?", "CANCELLED").
		Find(&passengers).Error
	return passengers, err
}

func (r *repository) FindByPassportNumber(ctx context.Context, passport string) ([]Passenger, error) {
	var passengers []Passenger
	err := r.db.WithContext(ctx).Where("LOWER(passport_number) = LOWER(?)", passport).Find(&passengers).Error
	return passengers, err
}

func (r *repository) Save(ctx context.Context, passenger *Passenger) error {
	return r.db.WithContext(ctx).Save(passenger).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Passenger{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteByBookingID(ctx context.Context, bookingID uint) error {
	return r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Delete(&Passenger{}).Error
}
