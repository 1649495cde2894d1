package passengers

import "time"

type PassengerType string

const (
	TypeAdult  PassengerType = "ADULT"
	TypeChild  PassengerType = "CHILD"
	TypeInfant PassengerType = "INFANT"
)

// TypeForAge derives the passenger type from age in whole years:
// under 2 INFANT, under 12 CHILD, otherwise ADULT.
func TypeForAge(age int) PassengerType {
	switch {
	case age < 2:
		return TypeInfant
	case age < 12:
		return TypeChild
	default:
		return TypeAdult
	}
}

type Passenger struct {
	ID             uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	BookingID      uint          `json:"booking_id" gorm:"not null;index"`
	FirstName      string        `json:"first_name" gorm:"not null"`
	LastName       string        `json:"last_name" gorm:"not null"`
	DateOfBirth    time.Time     `json:"date_of_birth" gorm:"not null"`
	Gender         string        `json:"gender"`
	PassportNumber string        `json:"passport_number" gorm:"not null"`
	Nationality    string        `json:"nationality" gorm:"not null"`
	SeatNumber     *string       `json:"seat_number"`
	Type           PassengerType `json:"type" gorm:"not null;default:'ADULT'"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (Passenger) TableName() string {
	return "passengers"
}

// Age in whole years at the reference time.
func (p *Passenger) Age(at time.Time) int {
	years := at.Year() - p.DateOfBirth.Year()
	if at.YearDay() < p.DateOfBirth.YearDay() {
		years--
	}
	return years
}
