// internal/courses/dto.go
package courses

// DTOs for API requests/responses

type CreateCourseRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=200"`
	Category        string   `json:"category" validate:"required,max=100"`
	Subjects        []string `json:"subjects" validate:"omitempty,dive,min=1,max=100"`
	FeesMin         float64  `json:"fees_min" validate:"omitempty,gte=0"`
	FeesMax         float64  `json:"fees_max" validate:"omitempty,gte=0"`
	CareerProspects []string `json:"career_prospects" validate:"omitempty,dive,min=1,max=200"`
	CollegeIDs      []int64  `json:"college_ids"`
}

type UpdateCourseRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=2,max=200"`
	Category        *string  `json:"category" validate:"omitempty,max=100"`
	Subjects        []string `json:"subjects" validate:"omitempty,dive,min=1,max=100"`
	FeesMin         *float64 `json:"fees_min" validate:"omitempty,gte=0"`
	FeesMax         *float64 `json:"fees_max" validate:"omitempty,gte=0"`
	CareerProspects []string `json:"career_prospects" validate:"omitempty,dive,min=1,max=200"`
	CollegeIDs      []int64  `json:"college_ids"`
}

type ListParams struct {
	Category string
	MaxFee   float64
	Search   string
	Page     int
	Limit    int
}

type ListResponse struct {
	Courses []*Course `json:"courses"`
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
}
