package payments

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error)
	GetByBookingID(ctx context.Context, bookingID uint) ([]Payment, error)
	GetByStatus(ctx context.Context, status Status) ([]Payment, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]Payment, error)
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
	HasSuccessfulPayment(ctx context.Context, bookingID uint) (bool, error)
	Save(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error) {
	var payment Payment
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) GetByBookingID(ctx context.Context, bookingID uint) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("created_at desc").Find(&payments).Error
	return payments, err
}

func (r *repository) GetByStatus(ctx context.Context, status Status) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at desc").Find(&payments).Error
	return payments, err
}

func (r *repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at asc").
		Find(&payments).Error
	return payments, err
}

func (r *repository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Payment{}).Where("transaction_id = ?", transactionID).Count(&count).Error
	return count > 0, err
}

func (r *repository) HasSuccessfulPayment(ctx context.Context, bookingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Payment{}).
		Where("booking_id = ? AND status = ?", bookingID, StatusSuccess).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Save(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Payment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
