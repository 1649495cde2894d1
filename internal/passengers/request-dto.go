package passengers

// payload for updating a passenger on a pending booking
type UpdatePassengerRequest struct {
	FirstName      *string `json:"first_name" binding:"omitempty,min=1"`
	LastName       *string `json:"last_name" binding:"omitempty,min=1"`
	DateOfBirth    *string `json:"date_of_birth"` // YYYY-MM-DD
	Gender         *string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER male female other"`
	PassportNumber *string `json:"passport_number" binding:"omitempty,min=1"`
	Nationality    *string `json:"nationality" binding:"omitempty,min=1"`
}

// payload for assigning a seat
type AssignSeatRequest struct {
	SeatNumber string `json:"seat_number" binding:"required,min=2,max=4"`
}
