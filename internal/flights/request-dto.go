package flights

import "time"

// payload for creating a flight
type CreateFlightRequest struct {
	FlightNumber       string    `json:"flight_number" binding:"required,min=3,max=10"`
	AirlineID          uint      `json:"airline_id" binding:"required"`
	DepartureAirportID uint      `json:"departure_airport_id" binding:"required"`
	ArrivalAirportID   uint      `json:"arrival_airport_id" binding:"required"`
	DepartureTime      time.Time `json:"departure_time" binding:"required"`
	ArrivalTime        time.Time `json:"arrival_time" binding:"required"`
	EconomySeats       int       `json:"economy_seats" binding:"min=0"`
	BusinessSeats      int       `json:"business_seats" binding:"min=0"`
	FirstClassSeats    int       `json:"first_class_seats" binding:"min=0"`
	BasePrice          float64   `json:"base_price" binding:"required,gt=0"`
	EconomyPrice       *float64  `json:"economy_price" binding:"omitempty,gt=0"`
	BusinessPrice      *float64  `json:"business_price" binding:"omitempty,gt=0"`
	FirstClassPrice    *float64  `json:"first_class_price" binding:"omitempty,gt=0"`
}

// payload for updating a flight
type UpdateFlightRequest struct {
	DepartureTime   *time.Time `json:"departure_time"`
	ArrivalTime     *time.Time `json:"arrival_time"`
	BasePrice       *float64   `json:"base_price" binding:"omitempty,gt=0"`
	EconomyPrice    *float64   `json:"economy_price" binding:"omitempty,gt=0"`
	BusinessPrice   *float64   `json:"business_price" binding:"omitempty,gt=0"`
	FirstClassPrice *float64   `json:"first_class_price" binding:"omitempty,gt=0"`
}

// payload for a status transition
type UpdateFlightStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// query parameters for availability search
type SearchFlightsRequest struct {
	From          string `form:"from" binding:"required,len=3"`
	To            string `form:"to" binding:"required,len=3"`
	DepartureDate string `form:"departure_date" binding:"required"` // YYYY-MM-DD
	FareClass     string `form:"fare_class"`
	Passengers    int    `form:"passengers" binding:"omitempty,min=1,max=9"`
}
