package airports

// payload for creating an airport
type CreateAirportRequest struct {
	Code     string `json:"code" binding:"required,len=3"`
	Name     string `json:"name" binding:"required,min=2,max=150"`
	City     string `json:"city" binding:"required,min=2,max=100"`
	Country  string `json:"country" binding:"required,min=2,max=100"`
	Timezone string `json:"timezone" binding:"omitempty,max=64"`
}

// payload for updating an airport
type UpdateAirportRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=150"`
	City     *string `json:"city" binding:"omitempty,min=2,max=100"`
	Country  *string `json:"country" binding:"omitempty,min=2,max=100"`
	Timezone *string `json:"timezone" binding:"omitempty,max=64"`
}
