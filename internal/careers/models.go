// internal/careers/models.go

package careers

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// Career represents one career path in the catalog
type Career struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description string         `json:"description" db:"description"`
	SalaryMin   float64        `json:"salary_min" db:"salary_min"`
	SalaryMax   float64        `json:"salary_max" db:"salary_max"`
	GrowthRate  float64        `json:"growth_rate" db:"growth_rate"` // percent, 0-100
	Demand      string         `json:"demand" db:"demand"`           // High, Medium, Low
	Skills      pq.StringArray `json:"skills" db:"skills"`
	Industries  pq.StringArray `json:"industries" db:"industries"`
	JobRoles    pq.StringArray `json:"job_roles" db:"job_roles"`
	Courses     pq.StringArray `json:"courses" db:"courses"` // names of qualifying courses
	Requirement Requirements   `json:"requirements" db:"requirements"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// Requirements describes what it takes to enter the career
type Requirements struct {
	Education      []string `json:"education"`
	Experience     string   `json:"experience"`
	Certifications []string `json:"certifications"`
}

// Scan implements the sql.Scanner interface for Requirements
func (r *Requirements) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	if bytes, ok := value.([]byte); ok {
		return json.Unmarshal(bytes, r)
	}
	return nil
}

// Value implements the driver.Valuer interface for Requirements
func (r Requirements) Value() (driver.Value, error) {
	return json.Marshal(r)
}
