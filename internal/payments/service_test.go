package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"aerobook/internal/shared/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByBookingID(ctx context.Context, bookingID uint) ([]Payment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByStatus(ctx context.Context, status Status) ([]Payment, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]Payment, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]Payment), args.Error(1)
}

func (m *MockPaymentRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) HasSuccessfulPayment(ctx context.Context, bookingID uint) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetForPayment(ctx context.Context, reference string) (*BookingSummary, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingSummary), args.Error(1)
}

func (m *MockBookingService) ReferenceForBookingID(ctx context.Context, bookingID uint) (string, error) {
	args := m.Called(ctx, bookingID)
	return args.String(0), args.Error(1)
}

func (m *MockBookingService) Confirm(ctx context.Context, reference string) error {
	args := m.Called(ctx, reference)
	return args.Error(0)
}

func (m *MockBookingService) Cancel(ctx context.Context, reference string) error {
	args := m.Called(ctx, reference)
	return args.Error(0)
}

type MockGatewayStub struct {
	mock.Mock
}

func (m *MockGatewayStub) Charge(ctx context.Context, transactionID string, amount float64, method Method) (*GatewayResult, error) {
	args := m.Called(ctx, transactionID, amount, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GatewayResult), args.Error(1)
}

func (m *MockGatewayStub) Refund(ctx context.Context, transactionID string, amount float64) (*GatewayResult, error) {
	args := m.Called(ctx, transactionID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GatewayResult), args.Error(1)
}

func pendingBooking() *BookingSummary {
	return &BookingSummary{ID: 11, Reference: "BK1", Status: "PENDING", TotalAmount: 9000.0}
}

func TestProcessPayment_Success(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	mockBookings.On("GetForPayment", ctx, "BK1").Return(pendingBooking(), nil).Once()
	mockRepo.On("HasSuccessfulPayment", ctx, uint(11)).Return(false, nil).Once()
	mockRepo.On("ExistsByTransactionID", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

	var persisted *Payment
	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*Payment)
	}).Return(nil).Once()

	mockGateway.On("Charge", ctx, mock.Anything, 9000.0, MethodCreditCard).
		Return(&GatewayResult{Reference: "GW-ABCD1234", Message: "charged 9000.00 via CREDIT_CARD"}, nil).Once()
	mockRepo.On("Save", ctx, mock.Anything).Return(nil).Once()
	mockBookings.On("Confirm", ctx, "BK1").Return(nil).Once()

	resp, err := service.ProcessPayment(ctx, ProcessPaymentRequest{
		BookingReference: "BK1",
		Amount:           9000.0,
		Method:           "credit_card",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Regexp(t, `^TXN_[0-9A-F]{16}$`, resp.TransactionID)
	assert.Contains(t, resp.GatewayResponse, "GW-ABCD1234")

	// The row hit the store as PENDING before the gateway was called.
	assert.NotNil(t, persisted)

	mockRepo.AssertExpectations(t)
	mockBookings.AssertExpectations(t)
	mockGateway.AssertExpectations(t)
}

func TestProcessPayment_InvalidMethod(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)

	resp, err := service.ProcessPayment(context.Background(), ProcessPaymentRequest{
		BookingReference: "BK1",
		Amount:           100.0,
		Method:           "CASH",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	mockBookings.AssertNotCalled(t, "GetForPayment")
}

func TestProcessPayment_NonPendingBookingRejected(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	confirmed := pendingBooking()
	confirmed.Status = "CONFIRMED"
	mockBookings.On("GetForPayment", ctx, "BK1").Return(confirmed, nil).Once()

	resp, err := service.ProcessPayment(ctx, ProcessPaymentRequest{
		BookingReference: "BK1", Amount: 9000.0, Method: "CREDIT_CARD",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindBookingState, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Create")
	mockGateway.AssertNotCalled(t, "Charge")
}

func TestProcessPayment_DoublePaymentRejected(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	mockBookings.On("GetForPayment", ctx, "BK1").Return(pendingBooking(), nil).Once()
	mockRepo.On("HasSuccessfulPayment", ctx, uint(11)).Return(true, nil).Once()

	resp, err := service.ProcessPayment(ctx, ProcessPaymentRequest{
		BookingReference: "BK1", Amount: 9000.0, Method: "CREDIT_CARD",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindBookingState, apperrors.KindOf(err))
	mockGateway.AssertNotCalled(t, "Charge")
}

func TestProcessPayment_GatewayDecline(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	mockBookings.On("GetForPayment", ctx, "BK1").Return(pendingBooking(), nil).Once()
	mockRepo.On("HasSuccessfulPayment", ctx, uint(11)).Return(false, nil).Once()
	mockRepo.On("ExistsByTransactionID", ctx, mock.Anything).Return(false, nil).Once()
	mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	declineErr := errors.New("gateway declined transaction")
	mockGateway.On("Charge", ctx, mock.Anything, 9000.0, MethodCreditCard).Return(nil, declineErr).Once()

	var saved *Payment
	mockRepo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*Payment)
	}).Return(nil).Once()

	resp, err := service.ProcessPayment(ctx, ProcessPaymentRequest{
		BookingReference: "BK1", Amount: 9000.0, Method: "CREDIT_CARD",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindGatewayFailure, apperrors.KindOf(err))

	// The failed attempt is recorded; the booking stays pending.
	assert.Equal(t, StatusFailed, saved.Status)
	assert.Contains(t, saved.GatewayResponse, "declined")
	mockBookings.AssertNotCalled(t, "Confirm")
}

func TestRefundPayment_FullRefundCancelsBooking(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	payment := &Payment{ID: 2, TransactionID: "TXN_ABC", BookingID: 11, Amount: 9000.0, Status: StatusSuccess}
	mockRepo.On("GetByTransactionID", ctx, "TXN_ABC").Return(payment, nil).Once()
	mockGateway.On("Refund", ctx, "TXN_ABC", 9000.0).
		Return(&GatewayResult{Reference: "GW-REF1", Message: "refunded 9000.00"}, nil).Once()
	mockRepo.On("Save", ctx, payment).Return(nil).Once()
	mockBookings.On("ReferenceForBookingID", ctx, uint(11)).Return("BK1", nil).Once()
	mockBookings.On("Cancel", ctx, "BK1").Return(nil).Once()

	resp, err := service.RefundPayment(ctx, "TXN_ABC", RefundPaymentRequest{})

	assert.NoError(t, err)
	assert.Equal(t, StatusRefunded, resp.Status)
	assert.Equal(t, 9000.0, resp.RefundedAmount)

	mockRepo.AssertExpectations(t)
	mockBookings.AssertExpectations(t)
	mockGateway.AssertExpectations(t)
}

func TestRefundPayment_PartialAmount(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	payment := &Payment{ID: 2, TransactionID: "TXN_ABC", BookingID: 11, Amount: 9000.0, Status: StatusSuccess}
	mockRepo.On("GetByTransactionID", ctx, "TXN_ABC").Return(payment, nil).Once()
	mockGateway.On("Refund", ctx, "TXN_ABC", 4500.0).
		Return(&GatewayResult{Reference: "GW-REF2", Message: "refunded 4500.00"}, nil).Once()
	mockRepo.On("Save", ctx, payment).Return(nil).Once()
	mockBookings.On("ReferenceForBookingID", ctx, uint(11)).Return("BK1", nil).Once()
	mockBookings.On("Cancel", ctx, "BK1").Return(nil).Once()

	half := 4500.0
	resp, err := service.RefundPayment(ctx, "TXN_ABC", RefundPaymentRequest{Amount: &half})

	assert.NoError(t, err)
	assert.Equal(t, 4500.0, resp.RefundedAmount)
}

func TestRefundPayment_OverRefundRejectedWithoutMutation(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	payment := &Payment{ID: 2, TransactionID: "TXN_ABC", BookingID: 11, Amount: 9000.0, Status: StatusSuccess}
	mockRepo.On("GetByTransactionID", ctx, "TXN_ABC").Return(payment, nil).Once()

	tooMuch := 10000.0
	resp, err := service.RefundPayment(ctx, "TXN_ABC", RefundPaymentRequest{Amount: &tooMuch})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindBookingState, apperrors.KindOf(err))
	assert.Equal(t, StatusSuccess, payment.Status)
	mockGateway.AssertNotCalled(t, "Refund")
	mockRepo.AssertNotCalled(t, "Save")
}

func TestRefundPayment_OnlySuccessfulPaymentsRefundable(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	for _, status := range []Status{StatusPending, StatusFailed, StatusRefunded} {
		payment := &Payment{ID: 2, TransactionID: "TXN_ABC", Amount: 9000.0, Status: status}
		mockRepo.On("GetByTransactionID", ctx, "TXN_ABC").Return(payment, nil).Once()

		resp, err := service.RefundPayment(ctx, "TXN_ABC", RefundPaymentRequest{})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, apperrors.KindBookingState, apperrors.KindOf(err))
	}

	mockGateway.AssertNotCalled(t, "Refund")
}

func TestRefundPayment_GatewayFailureLeavesPaymentUntouched(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	payment := &Payment{ID: 2, TransactionID: "TXN_ABC", BookingID: 11, Amount: 9000.0, Status: StatusSuccess}
	mockRepo.On("GetByTransactionID", ctx, "TXN_ABC").Return(payment, nil).Once()
	mockGateway.On("Refund", ctx, "TXN_ABC", 9000.0).Return(nil, errors.New("gateway rejected refund")).Once()

	resp, err := service.RefundPayment(ctx, "TXN_ABC", RefundPaymentRequest{})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindGatewayFailure, apperrors.KindOf(err))
	assert.Equal(t, StatusSuccess, payment.Status)
	assert.Equal(t, 0.0, payment.RefundedAmount)
	mockRepo.AssertNotCalled(t, "Save")
	mockBookings.AssertNotCalled(t, "Cancel")
}

func TestGetByTransactionID_NotFound(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	mockRepo.On("GetByTransactionID", ctx, "TXN_NOPE").Return(nil, gorm.ErrRecordNotFound).Once()

	resp, err := service.GetByTransactionID(ctx, "TXN_NOPE")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGetByDateRange_Validation(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	_, err := service.GetByDateRange(ctx, "2026-13-01", "2026-01-31")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = service.GetByDateRange(ctx, "2026-02-01", "2026-01-31")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestGetByDateRange_ToDayIsInclusive(t *testing.T) {
	mockRepo := &MockPaymentRepository{}
	mockBookings := &MockBookingService{}
	mockGateway := &MockGatewayStub{}

	service := NewService(mockRepo, mockBookings, mockGateway, nil)
	ctx := context.Background()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// The upper bound is the start of the day after "to".
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mockRepo.On("GetByDateRange", ctx, from, to).Return([]Payment{}, nil).Once()

	_, err := service.GetByDateRange(ctx, "2026-01-01", "2026-01-31")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMockGateway_DeterministicWithSeed(t *testing.T) {
	ctx := context.Background()

	// failureRate 0 never declines, 1 always declines.
	neverFails := NewMockGatewaySeeded(0.0, 0, 1)
	result, err := neverFails.Charge(ctx, "TXN_X", 100.0, MethodPayPal)
	assert.NoError(t, err)
	assert.Contains(t, result.Message, "charged 100.00")

	alwaysFails := NewMockGatewaySeeded(1.0, 0, 1)
	_, err = alwaysFails.Charge(ctx, "TXN_X", 100.0, MethodPayPal)
	assert.Error(t, err)

	_, err = alwaysFails.Refund(ctx, "TXN_X", 100.0)
	assert.Error(t, err)
}

func TestMockGateway_RespectsContextCancellation(t *testing.T) {
	gateway := NewMockGatewaySeeded(0.0, time.Second, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Charge(ctx, "TXN_X", 100.0, MethodCreditCard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseMethodAndStatus(t *testing.T) {
	method, ok := ParseMethod(" paypal ")
	assert.True(t, ok)
	assert.Equal(t, MethodPayPal, method)

	_, ok = ParseMethod("CASH")
	assert.False(t, ok)

	status, ok := ParseStatus("refunded")
	assert.True(t, ok)
	assert.Equal(t, StatusRefunded, status)

	_, ok = ParseStatus("VOID")
	assert.False(t, ok)
}
