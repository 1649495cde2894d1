package airlines

import "time"

type AirlineResponse struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(a *Airline) *AirlineResponse {
	return &AirlineResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Country:   a.Country,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toResponseList(airlines []Airline) []AirlineResponse {
	out := make([]AirlineResponse, 0, len(airlines))
	for i := range airlines {
		out = append(out, *toResponse(&airlines[i]))
	}
	return out
}
