// internal/careers/dto.go
package careers

// DTOs for API requests/responses

type CreateCareerRequest struct {
	Name        string       `json:"name" validate:"required,min=2,max=200"`
	Description string       `json:"description" validate:"omitempty,max=2000"`
	SalaryMin   float64      `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax   float64      `json:"salary_max" validate:"omitempty,gte=0"`
	GrowthRate  float64      `json:"growth_rate" validate:"omitempty,gte=0,lte=100"`
	Demand      string       `json:"demand" validate:"required,oneof=High Medium Low"`
	Skills      []string     `json:"skills" validate:"omitempty,dive,min=1,max=100"`
	Industries  []string     `json:"industries" validate:"omitempty,dive,min=1,max=100"`
	JobRoles    []string     `json:"job_roles" validate:"omitempty,dive,min=1,max=100"`
	Courses     []string     `json:"courses" validate:"omitempty,dive,min=1,max=200"`
	Requirement Requirements `json:"requirements"`
}

type UpdateCareerRequest struct {
	Name        *string       `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string       `json:"description" validate:"omitempty,max=2000"`
	SalaryMin   *float64      `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax   *float64      `json:"salary_max" validate:"omitempty,gte=0"`
	GrowthRate  *float64      `json:"growth_rate" validate:"omitempty,gte=0,lte=100"`
	Demand      *string       `json:"demand" validate:"omitempty,oneof=High Medium Low"`
	Skills      []string      `json:"skills" validate:"omitempty,dive,min=1,max=100"`
	Industries  []string      `json:"industries" validate:"omitempty,dive,min=1,max=100"`
	JobRoles    []string      `json:"job_roles" validate:"omitempty,dive,min=1,max=100"`
	Courses     []string      `json:"courses" validate:"omitempty,dive,min=1,max=200"`
	Requirement *Requirements `json:"requirements"`
}

type ListParams struct {
	Demand   string
	Industry string
	Search   string
	Page     int
	Limit    int
}

type ListResponse struct {
	Careers []*Career `json:"careers"`
	Total   int       `json:"total"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
}
