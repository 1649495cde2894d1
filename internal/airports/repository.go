package airports

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, airport *Airport) error
	GetByID(ctx context.Context, id uint) (*Airport, error)
	GetByCode(ctx context.Context, code string) (*Airport, error)
	GetAll(ctx context.Context) ([]Airport, error)
	GetByCountry(ctx context.Context, country string) ([]Airport, error)
	Search(ctx context.Context, query string) ([]Airport, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, airport *Airport) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, airport *Airport) error {
	return r.db.WithContext(ctx).Create(airport).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Airport, error) {
	var airport Airport
	if err := r.db.WithContext(ctx).First(&airport, id).Error; err != nil {
		return nil, err
	}
	return &airport, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Airport, error) {
	var airport Airport
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&airport).Error; err != nil {
		return nil, err
	}
	return &airport, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Airport, error) {
	var airports []Airport
	err := r.db.WithContext(ctx).Order("code asc").Find(&airports).Error
	return airports, err
}

func (r *repository) GetByCountry(ctx context.Context, country string) ([]Airport, error) {
	var airports []Airport
	err := r.db.WithContext(ctx).Where("LOWER(country) = LOWER(?)", country).Order("code asc").Find(&airports).Error
	return airports, err
}

// Search matches code, name or city, case-insensitively.
func (r *repository) Search(ctx context.Context, query string) ([]Airport, error) {
	var airports []Airport
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("code ILIKE ? OR name ILIKE ? OR city ILIKE ?", pattern, pattern, pattern).
		Order("code asc").
		Find(&airports).Error
	return airports, err
}

func (r *repository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Airport{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, airport *Airport) error {
	return r.db.WithContext(ctx).Save(airport).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Airport{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
