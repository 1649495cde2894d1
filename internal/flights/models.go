package flights

import "time"

// Flight carries schedule, pricing and the three per-class seat
// counters. Related entities are referenced by foreign key id only;
// callers that need airline or airport details fetch them from the
// owning store.
type Flight struct {
	ID                 uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FlightNumber       string    `json:"flight_number" gorm:"uniqueIndex;size:10;not null"`
	AirlineID          uint      `json:"airline_id" gorm:"not null;index"`
	DepartureAirportID uint      `json:"departure_airport_id" gorm:"not null;index"`
	ArrivalAirportID   uint      `json:"arrival_airport_id" gorm:"not null;index"`
	DepartureTime      time.Time `json:"departure_time" gorm:"not null;index"`
	ArrivalTime        time.Time `json:"arrival_time" gorm:"not null"`

	// Seat inventory. Each counter is kept >= 0; mutation goes through
	// AdjustSeats only, never direct arithmetic.
	EconomySeats    int `json:"economy_seats" gorm:"not null;default:0"`
	BusinessSeats   int `json:"business_seats" gorm:"not null;default:0"`
	FirstClassSeats int `json:"first_class_seats" gorm:"not null;default:0"`
	TotalSeats      int `json:"total_seats" gorm:"not null;default:0"`

	BasePrice       float64  `json:"base_price" gorm:"not null"`
	EconomyPrice    *float64 `json:"economy_price"`
	BusinessPrice   *float64 `json:"business_price"`
	FirstClassPrice *float64 `json:"first_class_price"`

	Status    Status    `json:"status" gorm:"not null;default:'SCHEDULED'"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Flight) TableName() string {
	return "flights"
}

// AvailableSeats derives the aggregate across all fare classes. There is
// no stored aggregate column; the three counters are the single source
// of truth.
func (f *Flight) AvailableSeats() int {
	return f.EconomySeats + f.BusinessSeats + f.FirstClassSeats
}
