package payments

import "time"

type PaymentResponse struct {
	ID              uint      `json:"id"`
	TransactionID   string    `json:"transaction_id"`
	BookingID       uint      `json:"booking_id"`
	Amount          float64   `json:"amount"`
	RefundedAmount  float64   `json:"refunded_amount"`
	Method          Method    `json:"method"`
	Status          Status    `json:"status"`
	GatewayResponse string    `json:"gateway_response"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toResponse(p *Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:              p.ID,
		TransactionID:   p.TransactionID,
		BookingID:       p.BookingID,
		Amount:          p.Amount,
		RefundedAmount:  p.RefundedAmount,
		Method:          p.Method,
		Status:          p.Status,
		GatewayResponse: p.GatewayResponse,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toResponseList(payments []Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, *toResponse(&payments[i]))
	}
	return out
}
