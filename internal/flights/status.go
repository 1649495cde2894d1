package flights

import "strings"

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusDelayed   Status = "DELAYED"
	StatusCancelled Status = "CANCELLED"
	StatusBoarding  Status = "BOARDING"
	StatusDeparted  Status = "DEPARTED"
	StatusArrived   Status = "ARRIVED"
)

// ParseStatus validates a status string, uppercasing it first.
// Unlike fare classes there is no default; an unknown status is an error
// because it only arrives through admin mutation, never search input.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusScheduled:
		return StatusScheduled, true
	case StatusDelayed:
		return StatusDelayed, true
	case StatusCancelled:
		return StatusCancelled, true
	case StatusBoarding:
		return StatusBoarding, true
	case StatusDeparted:
		return StatusDeparted, true
	case StatusArrived:
		return StatusArrived, true
	default:
		return "", false
	}
}

// Bookable reports whether new bookings may be taken against a flight
// in this status.
func (s Status) Bookable() bool {
	return s == StatusScheduled || s == StatusDelayed
}
