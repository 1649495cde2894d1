package bookings

import (
	"context"
	"time"
)

// PassengerInput mirrors the passenger fields the booking flow needs.
// The passengers package implements PassengerService through an adapter
// so this package never imports it.
type PassengerInput struct {
	FirstName      string
	LastName       string
	DateOfBirth    time.Time
	Gender         string
	PassportNumber string
	Nationality    string
}

// PassengerRecord is the read-side mirror returned when listing a
// booking's passengers.
type PassengerRecord struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	Gender         string    `json:"gender"`
	PassportNumber string    `json:"passport_number"`
	Nationality    string    `json:"nationality"`
	SeatNumber     *string   `json:"seat_number"`
	Type           string    `json:"type"`
}

type PassengerService interface {
	// CreateForBooking validates and persists the batch. Validation is
	// all-or-nothing: a failure anywhere means no passenger row remains.
	CreateForBooking(ctx context.Context, bookingID uint, inputs []PassengerInput) error
	ListForBooking(ctx context.Context, bookingID uint) ([]PassengerRecord, error)
	DeleteForBooking(ctx context.Context, bookingID uint) error
}
