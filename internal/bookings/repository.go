package bookings

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	GetByUserID(ctx context.Context, userID uint) ([]Booking, error)
	GetByStatus(ctx context.Context, status Status) ([]Booking, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	Save(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Booking, error) {
	var booking Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	var booking Booking
	if err := r.db.WithContext(ctx).Where("booking_reference = ?", reference).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

func (r *repository) GetByStatus(ctx context.Context, status Status) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

func (r *repository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).Where("booking_reference = ?", reference).Count(&count).Error
	return count > 0, err
}

func (r *repository) Save(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Booking{}, id).Error
}
