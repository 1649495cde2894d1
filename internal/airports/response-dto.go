package airports

import "time"

type AirportResponse struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(a *Airport) *AirportResponse {
	return &AirportResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		Timezone:  a.Timezone,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toResponseList(airports []Airport) []AirportResponse {
	out := make([]AirportResponse, 0, len(airports))
	for i := range airports {
		out = append(out, *toResponse(&airports[i]))
	}
	return out
}
