package airlines

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, airline *Airline) error
	GetByID(ctx context.Context, id uint) (*Airline, error)
	GetByCode(ctx context.Context, code string) (*Airline, error)
	GetAll(ctx context.Context) ([]Airline, error)
	GetActive(ctx context.Context) ([]Airline, error)
	GetByCountry(ctx context.Context, country string) ([]Airline, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, airline *Airline) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, airline *Airline) error {
	return r.db.WithContext(ctx).Create(airline).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Airline, error) {
	var airline Airline
	err := r.db.WithContext(ctx).First(&airline, id).Error
	if err != nil {
		return nil, err
	}
	return &airline, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Airline, error) {
	var airline Airline
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&airline).Error
	if err != nil {
		return nil, err
	}
	return &airline, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Airline, error) {
	var airlines []Airline
	err := r.db.WithContext(ctx).Order("name asc").Find(&airlines).Error
	return airlines, err
}

func (r *repository) GetActive(ctx context.Context) ([]Airline, error) {
	var airlines []Airline
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("name asc").Find(&airlines).Error
	return airlines, err
}

func (r *repository) GetByCountry(ctx context.Context, country string) ([]Airline, error) {
	var airlines []Airline
	err := r.db.WithContext(ctx).Where("LOWER(country) = LOWER(?)", country).Order("name asc").Find(&airlines).Error
	return airlines, err
}

func (r *repository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Airline{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, airline *Airline) error {
	return r.db.WithContext(ctx).Save(airline).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Airline{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
