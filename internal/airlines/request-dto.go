package airlines

// payload for creating an airline
type CreateAirlineRequest struct {
	Code    string `json:"code" binding:"required,min=2,max=3"`
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Country string `json:"country" binding:"omitempty,max=100"`
}

// payload for updating an airline
type UpdateAirlineRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=100"`
	Country *string `json:"country" binding:"omitempty,max=100"`
}
