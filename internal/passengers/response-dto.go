package passengers

import "time"

type PassengerResponse struct {
	ID             uint          `json:"id"`
	BookingID      uint          `json:"booking_id"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	DateOfBirth    time.Time     `json:"date_of_birth"`
	Gender         string        `json:"gender"`
	PassportNumber string        `json:"passport_number"`
	Nationality    string        `json:"nationality"`
	SeatNumber     *string       `json:"seat_number"`
	Type           PassengerType `json:"type"`
}

func toResponse(p *Passenger) *PassengerResponse {
	return &PassengerResponse{
		ID:             p.ID,
		BookingID:      p.BookingID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DateOfBirth:    p.DateOfBirth,
		Gender:         p.Gender,
		PassportNumber: p.PassportNumber,
		Nationality:    p.Nationality,
		SeatNumber:     p.SeatNumber,
		Type:           p.Type,
	}
}
