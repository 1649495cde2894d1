package database

import (
	"aerobook/internal/airlines"
	"aerobook/internal/airports"
	"aerobook/internal/bookings"
	"aerobook/internal/flights"
	"aerobook/internal/passengers"
	"aerobook/internal/payments"
	"aerobook/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&airlines.Airline{},
		&airports.Airport{},
		&flights.Flight{},
		&bookings.Booking{},
		&passengers.Passenger{},
		&payments.Payment{},
	)
}
