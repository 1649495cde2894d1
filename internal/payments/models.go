package payments

import (
	"strings"
	"time"
)

type Status string

// PENDING moves to SUCCESS or FAILED after the gateway call; SUCCESS
// can later move to REFUNDED.
const (
	StatusPending  Status = "PENDING"
	StatusSuccess  Status = "SUCCESS"
	StatusFailed   Status = "FAILED"
	StatusRefunded Status = "REFUNDED"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusSuccess:
		return StatusSuccess, true
	case StatusFailed:
		return StatusFailed, true
	case StatusRefunded:
		return StatusRefunded, true
	default:
		return "", false
	}
}

type Method string

const (
	MethodCreditCard   Method = "CREDIT_CARD"
	MethodDebitCard    Method = "DEBIT_CARD"
	MethodPayPal       Method = "PAYPAL"
	MethodBankTransfer Method = "BANK_TRANSFER"
)

func ParseMethod(s string) (Method, bool) {
	switch Method(strings.ToUpper(strings.TrimSpace(s))) {
	case MethodCreditCard:
		return MethodCreditCard, true
	case MethodDebitCard:
		return MethodDebitCard, true
	case MethodPayPal:
		return MethodPayPal, true
	case MethodBankTransfer:
		return MethodBankTransfer, true
	default:
		return "", false
	}
}

type Payment struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	TransactionID   string    `json:"transaction_id" gorm:"uniqueIndex;size:20;not null"`
	BookingID       uint      `json:"booking_id" gorm:"not null;index"`
	Amount          float64   `json:"amount" gorm:"not null"`
	RefundedAmount  float64   `json:"refunded_amount" gorm:"not null;default:0"`
	Method          Method    `json:"method" gorm:"not null"`
	Status          Status    `json:"status" gorm:"not null;default:'PENDING';index"`
	GatewayResponse string    `json:"gateway_response"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}
