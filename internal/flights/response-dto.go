package flights

import "time"

type FlightResponse struct {
	ID                 uint      `json:"id"`
	FlightNumber       string    `json:"flight_number"`
	AirlineID          uint      `json:"airline_id"`
	DepartureAirportID uint      `json:"departure_airport_id"`
	ArrivalAirportID   uint      `json:"arrival_airport_id"`
	DepartureTime      time.Time `json:"departure_time"`
	ArrivalTime        time.Time `json:"arrival_time"`
	DurationMinutes    int       `json:"duration_minutes"`

	EconomySeats    int `json:"economy_seats"`
	BusinessSeats   int `json:"business_seats"`
	FirstClassSeats int `json:"first_class_seats"`
	AvailableSeats  int `json:"available_seats"`
	TotalSeats      int `json:"total_seats"`

	BasePrice     float64 `json:"base_price"`
	EconomyFare   float64 `json:"economy_fare"`
	BusinessFare  float64 `json:"business_fare"`
	FirstClassFare float64 `json:"first_class_fare"`

	Status Status `json:"status"`
	Active bool   `json:"active"`
}

func toResponse(f *Flight) *FlightResponse {
	return &FlightResponse{
		ID:                 f.ID,
		FlightNumber:       f.FlightNumber,
		AirlineID:          f.AirlineID,
		DepartureAirportID: f.DepartureAirportID,
		ArrivalAirportID:   f.ArrivalAirportID,
		DepartureTime:      f.DepartureTime,
		ArrivalTime:        f.ArrivalTime,
		DurationMinutes:    int(f.ArrivalTime.Sub(f.DepartureTime).Minutes()),
		EconomySeats:       f.EconomySeats,
		BusinessSeats:      f.BusinessSeats,
		FirstClassSeats:    f.FirstClassSeats,
		AvailableSeats:     f.AvailableSeats(),
		TotalSeats:         f.TotalSeats,
		BasePrice:          f.BasePrice,
		EconomyFare:        PriceForClass(f, FareEconomy),
		BusinessFare:       PriceForClass(f, FareBusiness),
		FirstClassFare:     PriceForClass(f, FareFirst),
		Status:             f.Status,
		Active:             f.Active,
	}
}

func toResponseList(flights []Flight) []FlightResponse {
	out := make([]FlightResponse, 0, len(flights))
	for i := range flights {
		out = append(out, *toResponse(&flights[i]))
	}
	return out
}
