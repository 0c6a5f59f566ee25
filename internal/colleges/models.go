// internal/colleges/models.go

package colleges

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// College represents an institution in the catalog
type College struct {
	ID            int64          `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Type          string         `json:"type" db:"type"` // Government, Private, Semi-Government
	Category      string         `json:"category" db:"category"`
	State         string         `json:"state" db:"state"`
	City          string         `json:"city" db:"city"`
	Programs      ProgramList    `json:"programs" db:"programs"`
	Facilities    pq.StringArray `json:"facilities" db:"facilities"`
	RatingOverall float64        `json:"rating_overall" db:"rating_overall"`
	Placement     Placement      `json:"placement" db:"placement"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// Program is one course of study offered by a college
type Program struct {
	Name          string  `json:"name"`
	Stream        string  `json:"stream"` // Science, Commerce, Arts, Vocational or "All"
	DurationYears int     `json:"duration_years"`
	AnnualFee     float64 `json:"annual_fee"`
	TotalFee      float64 `json:"total_fee"`
	Seats         int     `json:"seats"`
	Cutoff        float64 `json:"cutoff"`
}

// ProgramList is stored as a JSONB column
type ProgramList []Program

// Scan implements the sql.Scanner interface for ProgramList
func (p *ProgramList) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	if bytes, ok := value.([]byte); ok {
		return json.Unmarshal(bytes, p)
	}
	return nil
}

// Value implements the driver.Valuer interface for ProgramList
func (p ProgramList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Placement holds aggregate placement statistics
type Placement struct {
	PlacementRate  float64 `json:"placement_rate"`
	AveragePackage float64 `json:"average_package"`
	HighestPackage float64 `json:"highest_package"`
}

// Scan implements the sql.Scanner interface for Placement
func (p *Placement) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	if bytes, ok := value.([]byte); ok {
		return json.Unmarshal(bytes, p)
	}
	return nil
}

// Value implements the driver.Valuer interface for Placement
func (p Placement) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// AverageAnnualFee returns the mean annual fee across programs,
// zero when the college has no programs
func (c *College) AverageAnnualFee() float64 {
	if len(c.Programs) == 0 {
		return 0
	}
	var total float64
	for _, program := range c.Programs {
		total += program.AnnualFee
	}
	return total / float64(len(c.Programs))
}

// HasStreamProgram reports whether any program matches the given stream.
// Programs with stream "All" match every stream.
func (c *College) HasStreamProgram(stream string) bool {
	for _, program := range c.Programs {
		if program.Stream == stream || program.Stream == "All" {
			return true
		}
	}
	return false
}
