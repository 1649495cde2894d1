package airlines

import (
	"context"
	"testing"

	"aerobook/internal/shared/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockAirlineRepository struct {
	mock.Mock
}

func (m *MockAirlineRepository) Create(ctx context.Context, airline *Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

func (m *MockAirlineRepository) GetByID(ctx context.Context, id uint) (*Airline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Airline), args.Error(1)
}

func (m *MockAirlineRepository) GetByCode(ctx context.Context, code string) (*Airline, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Airline), args.Error(1)
}

func (m *MockAirlineRepository) GetAll(ctx context.Context) ([]Airline, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Airline), args.Error(1)
}

func (m *MockAirlineRepository) GetActive(ctx context.Context) ([]Airline, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Airline), args.Error(1)
}

func (m *MockAirlineRepository) GetByCountry(ctx context.Context, country string) ([]Airline, error) {
	args := m.Called(ctx, country)
	return args.Get(0).([]Airline), args.Error(1)
}

func (m *MockAirlineRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockAirlineRepository) Update(ctx context.Context, airline *Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

func (m *MockAirlineRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_NormalizesCode(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ExistsByCode", ctx, "6E").Return(false, nil).Once()

	var created *Airline
	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*Airline)
	}).Return(nil).Once()

	resp, err := service.Create(ctx, CreateAirlineRequest{
		Code:    " 6e ",
		Name:    "  IndiGo ",
		Country: "India",
	})

	assert.NoError(t, err)
	assert.Equal(t, "6E", resp.Code)
	assert.Equal(t, "6E", created.Code)
	assert.Equal(t, "IndiGo", created.Name)
	assert.True(t, created.Active)

	mockRepo.AssertExpectations(t)
}

func TestCreate_DuplicateCode(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ExistsByCode", ctx, "AI").Return(true, nil).Once()

	resp, err := service.Create(ctx, CreateAirlineRequest{
		Code: "AI", Name: "Air India", Country: "India",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestGetByCode_NotFound(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByCode", ctx, "ZZ").Return(nil, gorm.ErrRecordNotFound).Once()

	resp, err := service.GetByCode(ctx, "zz")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	airline := &Airline{ID: 4, Code: "BA", Name: "British Airways", Country: "UK", Active: true}
	mockRepo.On("GetByID", ctx, uint(4)).Return(airline, nil).Once()
	mockRepo.On("Update", ctx, airline).Return(nil).Once()

	country := "United Kingdom"
	resp, err := service.Update(ctx, 4, UpdateAirlineRequest{Country: &country})

	assert.NoError(t, err)
	assert.Equal(t, "United Kingdom", resp.Country)
	assert.Equal(t, "British Airways", resp.Name)
}

func TestDeactivateAndReactivate(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	airline := &Airline{ID: 4, Code: "BA", Active: true}
	mockRepo.On("GetByID", ctx, uint(4)).Return(airline, nil).Twice()
	mockRepo.On("Update", ctx, airline).Return(nil).Twice()

	resp, err := service.Deactivate(ctx, 4)
	assert.NoError(t, err)
	assert.False(t, resp.Active)

	resp, err = service.Reactivate(ctx, 4)
	assert.NoError(t, err)
	assert.True(t, resp.Active)
}

func TestDelete_NotFound(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, uint(99)).Return(gorm.ErrRecordNotFound).Once()

	err := service.Delete(ctx, 99)
	assert.True(t, apperrors.IsNotFound(err))
}
