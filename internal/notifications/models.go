package notifications

import "time"

// Event types carried on the booking topic.
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentRefunded  = "payment.refunded"
)

// BookingEvent is the wire format published to Kafka. The booking
// reference doubles as the partition key so every event for a booking
// lands on the same partition in order.
type BookingEvent struct {
	Type             string    `json:"type"`
	BookingReference string    `json:"booking_reference"`
	FlightNumber     string    `json:"flight_number,omitempty"`
	UserEmail        string    `json:"user_email,omitempty"`
	FareClass        string    `json:"fare_class,omitempty"`
	Passengers       int       `json:"passengers,omitempty"`
	Amount           float64   `json:"amount,omitempty"`
	TransactionID    string    `json:"transaction_id,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// Subject renders the email subject line for an event.
func (e BookingEvent) Subject() string {
	switch e.Type {
	case EventBookingCreated:
		return "Your booking " + e.BookingReference + " is pending payment"
	case EventBookingConfirmed:
		return "Booking " + e.BookingReference + " confirmed"
	case EventBookingCancelled:
		return "Booking " + e.BookingReference + " cancelled"
	case EventPaymentSucceeded:
		return "Payment received for booking " + e.BookingReference
	case EventPaymentRefunded:
		return "Refund issued for booking " + e.BookingReference
	default:
		return "Update on booking " + e.BookingReference
	}
}
