package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aerobook/internal/notifications"
	"aerobook/internal/shared/apperrors"
	"aerobook/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxTransactionIDAttempts = 10

type Service interface {
	ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*PaymentResponse, error)
	RefundPayment(ctx context.Context, transactionID string, req RefundPaymentRequest) (*PaymentResponse, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*PaymentResponse, error)
	GetByBookingReference(ctx context.Context, reference string) ([]PaymentResponse, error)
	GetByStatus(ctx context.Context, status string) ([]PaymentResponse, error)
	GetByDateRange(ctx context.Context, from, to string) ([]PaymentResponse, error)
	Delete(ctx context.Context, transactionID string) error
}

type service struct {
	repo       Repository
	bookingSvc BookingService
	gateway    PaymentGateway
	events     notifications.Publisher
	logger     *logger.Logger
}

func NewService(repo Repository, bookingSvc BookingService, gateway PaymentGateway, events notifications.Publisher) Service {
	return &service{
		repo:       repo,
		bookingSvc: bookingSvc,
		gateway:    gateway,
		events:     events,
		logger:     logger.GetDefault(),
	}
}

// ProcessPayment charges a pending booking. The PENDING payment row is
// persisted before the gateway call so a crash mid-charge leaves an
// observable record. Gateway success confirms the booking; gateway
// failure marks the payment FAILED and leaves the booking PENDING.
func (s *service) ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*PaymentResponse, error) {
	method, ok := ParseMethod(req.Method)
	if !ok {
		return nil, apperrors.Validation("invalid payment method: %s", req.Method)
	}

	booking, err := s.bookingSvc.GetForPayment(ctx, req.BookingReference)
	if err != nil {
		return nil, err
	}
	if booking.Status != "PENDING" {
		return nil, apperrors.BookingState("booking %s is %s; only pending bookings can be paid", booking.Reference, booking.Status)
	}

	alreadyPaid, err := s.repo.HasSuccessfulPayment(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing payments: %w", err)
	}
	if alreadyPaid {
		return nil, apperrors.BookingState("booking %s has already been paid", booking.Reference)
	}

	transactionID, err := s.generateTransactionID(ctx)
	if err != nil {
		return nil, err
	}

	payment := &Payment{
		TransactionID: transactionID,
		BookingID:     booking.ID,
		Amount:        req.Amount,
		Method:        method,
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to persist payment: %w", err)
	}

	result, err := s.gateway.Charge(ctx, transactionID, payment.Amount, method)
	if err != nil {
		payment.Status = StatusFailed
		payment.GatewayResponse = err.Error()
		if saveErr := s.repo.Save(ctx, payment); saveErr != nil {
			s.logger.ErrorWithContext(ctx, "failed to persist failed payment", saveErr,
				map[string]interface{}{"transaction_id": transactionID})
		}
		return nil, apperrors.GatewayFailure(err, "payment for booking %s failed", booking.Reference)
	}

	payment.Status = StatusSuccess
	payment.GatewayResponse = fmt.Sprintf("%s (%s)", result.Message, result.Reference)
	if err := s.repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to persist payment result: %w", err)
	}

	if err := s.bookingSvc.Confirm(ctx, booking.Reference); err != nil {
		return nil, fmt.Errorf("payment %s succeeded but booking confirmation failed: %w", transactionID, err)
	}

	s.logger.LogPaymentProcessed(ctx, transactionID, string(payment.Status), payment.Amount)
	s.publish(ctx, notifications.BookingEvent{
		Type:             notifications.EventPaymentSucceeded,
		BookingReference: booking.Reference,
		TransactionID:    transactionID,
		Amount:           payment.Amount,
		OccurredAt:       time.Now(),
	})

	return toResponse(payment), nil
}

// RefundPayment reverses a successful payment. The amount defaults to
// the full original charge; over-refunds are rejected without mutation.
func (s *service) RefundPayment(ctx context.Context, transactionID string, req RefundPaymentRequest) (*PaymentResponse, error) {
	payment, err := s.getPayment(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if payment.Status != StatusSuccess {
		return nil, apperrors.BookingState("payment %s is %s; only successful payments can be refunded", transactionID, payment.Status)
	}

	amount := payment.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount > payment.Amount {
		return nil, apperrors.BookingState("refund amount %.2f exceeds payment amount %.2f", amount, payment.Amount)
	}

	result, err := s.gateway.Refund(ctx, transactionID, amount)
	if err != nil {
		return nil, apperrors.GatewayFailure(err, "refund of transaction %s failed", transactionID)
	}

	payment.Status = StatusRefunded
	payment.RefundedAmount = amount
	payment.GatewayResponse = fmt.Sprintf("%s (%s)", result.Message, result.Reference)
	if err := s.repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to persist refund: %w", err)
	}

	booking, err := s.lookupBookingReference(ctx, payment.BookingID)
	if err != nil {
		return nil, err
	}
	if err := s.bookingSvc.Cancel(ctx, booking); err != nil {
		return nil, fmt.Errorf("refund %s succeeded but booking cancellation failed: %w", transactionID, err)
	}

	s.logger.LogPaymentProcessed(ctx, transactionID, string(payment.Status), amount)
	s.publish(ctx, notifications.BookingEvent{
		Type:             notifications.EventPaymentRefunded,
		BookingReference: booking,
		TransactionID:    transactionID,
		Amount:           amount,
		OccurredAt:       time.Now(),
	})

	return toResponse(payment), nil
}

func (s *service) GetByTransactionID(ctx context.Context, transactionID string) (*PaymentResponse, error) {
	payment, err := s.getPayment(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return toResponse(payment), nil
}

func (s *service) GetByBookingReference(ctx context.Context, reference string) ([]PaymentResponse, error) {
	booking, err := s.bookingSvc.GetForPayment(ctx, reference)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.GetByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return toResponseList(payments), nil
}

func (s *service) GetByStatus(ctx context.Context, status string) ([]PaymentResponse, error) {
	parsed, ok := ParseStatus(status)
	if !ok {
		return nil, apperrors.Validation("invalid payment status: %s", status)
	}
	payments, err := s.repo.GetByStatus(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return toResponseList(payments), nil
}

func (s *service) GetByDateRange(ctx context.Context, from, to string) ([]PaymentResponse, error) {
	fromTime, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, apperrors.Validation("from must be in YYYY-MM-DD format")
	}
	toTime, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, apperrors.Validation("to must be in YYYY-MM-DD format")
	}
	if toTime.Before(fromTime) {
		return nil, apperrors.Validation("to must not be before from")
	}

	payments, err := s.repo.GetByDateRange(ctx, fromTime, toTime.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return toResponseList(payments), nil
}

func (s *service) Delete(ctx context.Context, transactionID string) error {
	payment, err := s.getPayment(ctx, transactionID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, payment.ID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

func (s *service) getPayment(ctx context.Context, transactionID string) (*Payment, error) {
	payment, err := s.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("payment with transaction id %s not found", transactionID)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

// generateTransactionID produces TXN_ plus 16 uppercase hex characters,
// retrying on the (unlikely) collision.
func (s *service) generateTransactionID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxTransactionIDAttempts; attempt++ {
		hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
		transactionID := "TXN_" + hex[:16]

		exists, err := s.repo.ExistsByTransactionID(ctx, transactionID)
		if err != nil {
			return "", fmt.Errorf("failed to check transaction id: %w", err)
		}
		if !exists {
			return transactionID, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique transaction id after %d attempts", maxTransactionIDAttempts)
}

// lookupBookingReference maps a payment's booking id back to the
// reference the bookings service keys on.
func (s *service) lookupBookingReference(ctx context.Context, bookingID uint) (string, error) {
	reference, err := s.bookingSvc.ReferenceForBookingID(ctx, bookingID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve booking for payment: %w", err)
	}
	return reference, nil
}

func (s *service) publish(ctx context.Context, event notifications.BookingEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishBookingEvent(ctx, event); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to publish payment event", err,
			map[string]interface{}{"event_type": event.Type, "transaction_id": event.TransactionID})
	}
}
