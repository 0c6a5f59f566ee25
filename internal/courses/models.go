// internal/courses/models.go

package courses

import (
	"time"

	"github.com/lib/pq"
)

// Course represents one course of study in the catalog
type Course struct {
	ID              int64          `json:"id" db:"id"`
	Name            string         `json:"name" db:"name"`
	Category        string         `json:"category" db:"category"` // Science, Commerce, Arts, Vocational
	Subjects        pq.StringArray `json:"subjects" db:"subjects"`
	FeesMin         float64        `json:"fees_min" db:"fees_min"`
	FeesMax         float64        `json:"fees_max" db:"fees_max"`
	CareerProspects pq.StringArray `json:"career_prospects" db:"career_prospects"`
	CollegeIDs      pq.Int64Array  `json:"college_ids" db:"college_ids"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}
