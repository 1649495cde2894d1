package airports

import "time"

// Airport is location master data. Code is the three letter IATA code.
type Airport struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Code      string    `json:"code" gorm:"uniqueIndex;size:3;not null"`
	Name      string    `json:"name" gorm:"not null"`
	City      string    `json:"city" gorm:"not null"`
	Country   string    `json:"country" gorm:"not null"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Airport) TableName() string {
	return "airports"
}
