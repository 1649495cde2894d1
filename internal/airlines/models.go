package airlines

import "time"

// Airline is carrier master data. Code is the two/three letter IATA
// designator and is unique across the table.
type Airline struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Code      string    `json:"code" gorm:"uniqueIndex;size:3;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Country   string    `json:"country"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Airline) TableName() string {
	return "airlines"
}
