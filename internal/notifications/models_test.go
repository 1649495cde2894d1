package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingEventSubject(t *testing.T) {
	testCases := []struct {
		eventType string
		expected  string
	}{
		{EventBookingCreated, "Your booking BK1 is pending payment"},
		{EventBookingConfirmed, "Booking BK1 confirmed"},
		{EventBookingCancelled, "Booking BK1 cancelled"},
		{EventPaymentSucceeded, "Payment received for booking BK1"},
		{EventPaymentRefunded, "Refund issued for booking BK1"},
		{"something.else", "Update on booking BK1"},
	}

	for _, tc := range testCases {
		t.Run(tc.eventType, func(t *testing.T) {
			event := BookingEvent{Type: tc.eventType, BookingReference: "BK1"}
			assert.Equal(t, tc.expected, event.Subject())
		})
	}
}
