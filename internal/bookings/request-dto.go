package bookings

// one passenger in a booking request
type PassengerRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	DateOfBirth    string `json:"date_of_birth" binding:"required"` // YYYY-MM-DD
	Gender         string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER male female other"`
	PassportNumber string `json:"passport_number" binding:"required"`
	Nationality    string `json:"nationality" binding:"required"`
}

// payload for creating a booking
type CreateBookingRequest struct {
	FlightID   uint               `json:"flight_id" binding:"required"`
	FareClass  string             `json:"fare_class"`
	Passengers []PassengerRequest `json:"passengers" binding:"required,min=1,max=9,dive"`
}

// payload for updating a pending booking
type UpdateBookingRequest struct {
	FareClass  string             `json:"fare_class"`
	Passengers []PassengerRequest `json:"passengers" binding:"omitempty,min=1,max=9,dive"`
}
