package payments

// payload for charging a pending booking
type ProcessPaymentRequest struct {
	BookingReference string  `json:"booking_reference" binding:"required"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	Method           string  `json:"method" binding:"required"`
	CardNumber       string  `json:"card_number" binding:"omitempty,min=12,max=19"`
	CardHolder       string  `json:"card_holder"`
}

// payload for refunding a successful payment; amount defaults to the
// full original amount when omitted
type RefundPaymentRequest struct {
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
}
