package passengers

import (
	"context"
	"testing"
	"time"

	"aerobook/internal/bookings"
	"aerobook/internal/shared/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) Create(ctx context.Context, passenger *Passenger) error {
	args := m.Called(ctx, passenger)
	return args.Error(0)
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id uint) (*Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Passenger), args.Error(1)
}

func (m *MockPassengerRepository) FindByBookingID(ctx context.Context, bookingID uint) ([]Passenger, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]Passenger), args.Error(1)
}

func (m *MockPassengerRepository) FindByFlightID(ctx context.Context, flightID uint) ([]Passenger, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]Passenger), args.Error(1)
}

func (m *MockPassengerRepository) FindByPassportNumber(ctx context.Context, passport string) ([]Passenger, error) {
	args := m.Called(ctx, passport)
	return args.Get(0).([]Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Save(ctx context.Context, passenger *Passenger) error {
	args := m.Called(ctx, passenger)
	return args.Error(0)
}

func (m *MockPassengerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPassengerRepository) DeleteByBookingID(ctx context.Context, bookingID uint) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *bookings.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uint) (*bookings.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByReference(ctx context.Context, reference string) (*bookings.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID uint) ([]bookings.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]bookings.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByStatus(ctx context.Context, status bookings.Status) ([]bookings.Booking, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]bookings.Booking), args.Error(1)
}

func (m *MockBookingRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	args := m.Called(ctx, reference)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *bookings.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validInput() bookings.PassengerInput {
	return bookings.PassengerInput{
		FirstName:      "Asha",
		LastName:       "Nair",
		DateOfBirth:    time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:         "female",
		PassportNumber: "P1234567",
		Nationality:    "IN",
	}
}

func TestTypeForAge(t *testing.T) {
	assert.Equal(t, TypeInfant, TypeForAge(0))
	assert.Equal(t, TypeInfant, TypeForAge(1))
	assert.Equal(t, TypeChild, TypeForAge(2))
	assert.Equal(t, TypeChild, TypeForAge(11))
	assert.Equal(t, TypeAdult, TypeForAge(12))
	assert.Equal(t, TypeAdult, TypeForAge(70))
}

func TestPassengerAge_BirthdayNotYetReached(t *testing.T) {
	p := &Passenger{DateOfBirth: time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, 23, p.Age(time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 24, p.Age(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestCreateForBooking_Success(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	second := validInput()
	second.FirstName = "Rohan"
	second.PassportNumber = "P7654321"

	mockRepo.On("FindByBookingID", ctx, uint(5)).Return([]Passenger{}, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*passengers.Passenger")).Return(nil).Twice()

	err := service.CreateForBooking(ctx, 5, []bookings.PassengerInput{validInput(), second})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCreateForBooking_NormalizesAndTypes(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	input := validInput()
	input.FirstName = "  Asha "
	input.Gender = " female "
	input.DateOfBirth = time.Now().AddDate(-1, 0, 0) // one year old

	var created *Passenger
	mockRepo.On("FindByBookingID", ctx, uint(5)).Return([]Passenger{}, nil).Once()
	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*Passenger)
	}).Return(nil).Once()

	err := service.CreateForBooking(ctx, 5, []bookings.PassengerInput{input})

	assert.NoError(t, err)
	assert.Equal(t, "Asha", created.FirstName)
	assert.Equal(t, "FEMALE", created.Gender)
	assert.Equal(t, TypeInfant, created.Type)
}

func TestCreateForBooking_ValidationOrder(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	testCases := []struct {
		name        string
		mutate      func(*bookings.PassengerInput)
		expectedErr string
	}{
		{"Missing first name", func(in *bookings.PassengerInput) { in.FirstName = "  " }, "first name is required"},
		{"Missing last name", func(in *bookings.PassengerInput) { in.LastName = "" }, "last name is required"},
		{"Missing date of birth", func(in *bookings.PassengerInput) { in.DateOfBirth = time.Time{} }, "date of birth is required"},
		{"Future date of birth", func(in *bookings.PassengerInput) { in.DateOfBirth = time.Now().AddDate(1, 0, 0) }, "cannot be in the future"},
		{"Missing passport", func(in *bookings.PassengerInput) { in.PassportNumber = "" }, "passport number is required"},
		{"Missing nationality", func(in *bookings.PassengerInput) { in.Nationality = "" }, "nationality is required"},
		{"Implausible age", func(in *bookings.PassengerInput) { in.DateOfBirth = time.Now().AddDate(-130, 0, 0) }, "cannot exceed 120 years"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo.On("FindByBookingID", ctx, uint(5)).Return([]Passenger{}, nil).Once()

			input := validInput()
			tc.mutate(&input)

			err := service.CreateForBooking(ctx, 5, []bookings.PassengerInput{input})

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateForBooking_DuplicatePassportInBatch(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	duplicate := validInput()
	duplicate.FirstName = "Rohan"
	duplicate.PassportNumber = "p1234567" // same passport, different case

	mockRepo.On("FindByBookingID", ctx, uint(5)).Return([]Passenger{}, nil).Once()

	err := service.CreateForBooking(ctx, 5, []bookings.PassengerInput{validInput(), duplicate})

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	// All-or-nothing: the valid first passenger must not be written either.
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateForBooking_DuplicatePassportAgainstExisting(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	existing := []Passenger{{ID: 1, BookingID: 5, PassportNumber: "P1234567"}}
	mockRepo.On("FindByBookingID", ctx, uint(5)).Return(existing, nil).Once()

	err := service.CreateForBooking(ctx, 5, []bookings.PassengerInput{validInput()})

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpdate_RejectsNonPendingBooking(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	passenger := &Passenger{ID: 9, BookingID: 5, FirstName: "Asha", LastName: "Nair",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), PassportNumber: "P1234567", Nationality: "IN"}
	booking := &bookings.Booking{ID: 5, BookingReference: "BK1", Status: bookings.StatusConfirmed}

	mockRepo.On("GetByID", ctx, uint(9)).Return(passenger, nil).Once()
	mockBookings.On("GetByID", ctx, uint(5)).Return(booking, nil).Once()

	name := "Aisha"
	resp, err := service.Update(ctx, 9, UpdatePassengerRequest{FirstName: &name})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindBookingState, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Save")
}

func TestUpdate_PassportConflictWithSibling(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	passenger := &Passenger{ID: 9, BookingID: 5, FirstName: "Asha", LastName: "Nair",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), PassportNumber: "P1234567", Nationality: "IN"}
	booking := &bookings.Booking{ID: 5, BookingReference: "BK1", Status: bookings.StatusPending}
	sibling := Passenger{ID: 10, BookingID: 5, PassportNumber: "P7654321"}

	mockRepo.On("GetByID", ctx, uint(9)).Return(passenger, nil).Once()
	mockBookings.On("GetByID", ctx, uint(5)).Return(booking, nil).Once()
	mockRepo.On("FindByBookingID", ctx, uint(5)).Return([]Passenger{*passenger, sibling}, nil).Once()

	newPassport := "p7654321"
	resp, err := service.Update(ctx, 9, UpdatePassengerRequest{PassportNumber: &newPassport})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Save")
}

func TestDelete_RequiresPendingBooking(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	passenger := &Passenger{ID: 9, BookingID: 5}
	booking := &bookings.Booking{ID: 5, BookingReference: "BK1", Status: bookings.StatusCancelled}

	mockRepo.On("GetByID", ctx, uint(9)).Return(passenger, nil).Once()
	mockBookings.On("GetByID", ctx, uint(5)).Return(booking, nil).Once()

	err := service.Delete(ctx, 9)

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindBookingState, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestAssignSeat_Success(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	passenger := &Passenger{ID: 9, BookingID: 5, FirstName: "Asha", LastName: "Nair",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), PassportNumber: "P1234567", Nationality: "IN"}
	booking := &bookings.Booking{ID: 5, FlightID: 7, Status: bookings.StatusPending}

	mockRepo.On("GetByID", ctx, uint(9)).Return(passenger, nil).Once()
	mockBookings.On("GetByID", ctx, uint(5)).Return(booking, nil).Once()
	mockRepo.On("FindByFlightID", ctx, uint(7)).Return([]Passenger{*passenger}, nil).Once()
	mockRepo.On("Save", ctx, passenger).Return(nil).Once()

	resp, err := service.AssignSeat(ctx, 9, " 12a ")

	assert.NoError(t, err)
	assert.NotNil(t, resp.SeatNumber)
	assert.Equal(t, "12A", *resp.SeatNumber)
}

func TestAssignSeat_ConflictOnSameFlight(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	passenger := &Passenger{ID: 9, BookingID: 5}
	booking := &bookings.Booking{ID: 5, FlightID: 7, Status: bookings.StatusPending}

	taken := "12A"
	// The holder belongs to a different booking on the same flight.
	holder := Passenger{ID: 20, BookingID: 6, SeatNumber: &taken}

	mockRepo.On("GetByID", ctx, uint(9)).Return(passenger, nil).Once()
	mockBookings.On("GetByID", ctx, uint(5)).Return(booking, nil).Once()
	mockRepo.On("FindByFlightID", ctx, uint(7)).Return([]Passenger{*passenger, holder}, nil).Once()

	resp, err := service.AssignSeat(ctx, 9, "12A")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Save")
}

func TestAssignSeat_SameSeatOnAnotherFlightAllowed(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	passenger := &Passenger{ID: 9, BookingID: 5, FirstName: "Asha", LastName: "Nair",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), PassportNumber: "P1234567", Nationality: "IN"}
	booking := &bookings.Booking{ID: 5, FlightID: 8, Status: bookings.StatusPending}

	// 12A is held on flight 7; the lookup for flight 8 does not see it.
	mockRepo.On("GetByID", ctx, uint(9)).Return(passenger, nil).Once()
	mockBookings.On("GetByID", ctx, uint(5)).Return(booking, nil).Once()
	mockRepo.On("FindByFlightID", ctx, uint(8)).Return([]Passenger{*passenger}, nil).Once()
	mockRepo.On("Save", ctx, passenger).Return(nil).Once()

	resp, err := service.AssignSeat(ctx, 9, "12A")

	assert.NoError(t, err)
	assert.Equal(t, "12A", *resp.SeatNumber)
	mockRepo.AssertNotCalled(t, "FindByFlightID", ctx, uint(7))
	mockRepo.AssertExpectations(t)
}

func TestAssignSeat_ReassigningOwnSeatAllowed(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	current := "12A"
	passenger := &Passenger{ID: 9, BookingID: 5, FirstName: "Asha", LastName: "Nair",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), PassportNumber: "P1234567",
		Nationality: "IN", SeatNumber: &current}
	booking := &bookings.Booking{ID: 5, FlightID: 7, Status: bookings.StatusPending}

	mockRepo.On("GetByID", ctx, uint(9)).Return(passenger, nil).Once()
	mockBookings.On("GetByID", ctx, uint(5)).Return(booking, nil).Once()
	mockRepo.On("FindByFlightID", ctx, uint(7)).Return([]Passenger{*passenger}, nil).Once()
	mockRepo.On("Save", ctx, passenger).Return(nil).Once()

	resp, err := service.AssignSeat(ctx, 9, "12A")

	assert.NoError(t, err)
	assert.Equal(t, "12A", *resp.SeatNumber)
}

func TestAssignSeat_EmptySeatRejected(t *testing.T) {
	mockRepo := &MockPassengerRepository{}
	mockBookings := &MockBookingRepository{}
	service := NewService(mockRepo, mockBookings)
	ctx := context.Background()

	resp, err := service.AssignSeat(ctx, 9, "   ")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "GetByID")
}
