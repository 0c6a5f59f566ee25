// internal/colleges/dto.go
package colleges

// DTOs for API requests/responses

type CreateCollegeRequest struct {
	Name          string    `json:"name" validate:"required,min=2,max=200"`
	Type          string    `json:"type" validate:"required,oneof=Government Private Semi-Government Deemed"`
	Category      string    `json:"category" validate:"omitempty,max=100"`
	State         string    `json:"state" validate:"required,max=100"`
	City          string    `json:"city" validate:"required,max=100"`
	Programs      []Program `json:"programs" validate:"omitempty,dive"`
	Facilities    []string  `json:"facilities" validate:"omitempty,dive,min=1,max=100"`
	RatingOverall float64   `json:"rating_overall" validate:"omitempty,gte=0,lte=5"`
	Placement     Placement `json:"placement"`
}

type UpdateCollegeRequest struct {
	Name          *string    `json:"name" validate:"omitempty,min=2,max=200"`
	Type          *string    `json:"type" validate:"omitempty,oneof=Government Private Semi-Government Deemed"`
	Category      *string    `json:"category" validate:"omitempty,max=100"`
	State         *string    `json:"state" validate:"omitempty,max=100"`
	City          *string    `json:"city" validate:"omitempty,max=100"`
	Programs      []Program  `json:"programs" validate:"omitempty,dive"`
	Facilities    []string   `json:"facilities" validate:"omitempty,dive,min=1,max=100"`
	RatingOverall *float64   `json:"rating_overall" validate:"omitempty,gte=0,lte=5"`
	Placement     *Placement `json:"placement"`
}

type ListParams struct {
	State    string
	City     string
	Type     string
	Category string
	MaxFee   float64
	Page     int
	Limit    int
}

// CandidateFilter bounds the pool the recommendation engine scores
type CandidateFilter struct {
	States    []string
	Types     []string
	MaxBudget float64
	Limit     int
}

type ListResponse struct {
	Colleges []*College `json:"colleges"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
}
