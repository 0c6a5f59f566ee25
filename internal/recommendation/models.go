// internal/recommendation/models.go
// The per-user profile document. Nested sections live in JSONB columns,
// so each one implements sql.Scanner / driver.Valuer.

package recommendation

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// UserProfile is the per-user preference/behavior/recommendation aggregate
type UserProfile struct {
	ID                 int64              `json:"id" db:"id"`
	UserID             int64              `json:"user_id" db:"user_id"`
	AcademicBackground AcademicBackground `json:"academic_background" db:"academic_background"`
	Interests          Interests          `json:"interests" db:"interests"`
	Preferences        Preferences        `json:"preferences" db:"preferences"`
	AssessmentResults  AssessmentResults  `json:"assessment_results" db:"assessment_results"`
	BehaviorData       BehaviorData       `json:"behavior_data" db:"behavior_data"`
	Recommendations    RecommendationSet  `json:"recommendations" db:"recommendations"`

	// Version guards against concurrent lost updates: every save is a
	// compare-and-swap on this field.
	Version   int       `json:"-" db:"version"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AcademicBackground captures the student's current academic standing
type AcademicBackground struct {
	CurrentClass      string         `json:"current_class"`
	Stream            string         `json:"stream"` // Science, Commerce, Arts, Vocational
	Subjects          []string       `json:"subjects"`
	Grades            []SubjectGrade `json:"grades"`
	OverallPercentage float64        `json:"overall_percentage"` // 0-100
}

type SubjectGrade struct {
	Subject string  `json:"subject"`
	Marks   float64 `json:"marks"`
	Grade   string  `json:"grade"`
}

// Interests are free-text tags used for substring matching during scoring
type Interests struct {
	Subjects     []string `json:"subjects"`
	Activities   []string `json:"activities"`
	CareerFields []string `json:"career_fields"`
}

// Preferences constrain the college candidate pool
type Preferences struct {
	Location     LocationPreference `json:"location"`
	Budget       BudgetRange        `json:"budget"`
	CollegeTypes []string           `json:"college_types"` // Government, Private, Deemed
	CourseTypes  []string           `json:"course_types"`
}

type LocationPreference struct {
	PreferredStates []string `json:"preferred_states"`
	PreferredCities []string `json:"preferred_cities"`
}

type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AssessmentResults holds self-assessment outcomes
type AssessmentResults struct {
	AptitudeScores    AptitudeScores    `json:"aptitude_scores"`
	PersonalityTraits PersonalityTraits `json:"personality_traits"`
	CareerMatches     []string          `json:"career_matches"`
}

// AptitudeScores are 0-100 per dimension
type AptitudeScores struct {
	Logical    float64 `json:"logical"`
	Verbal     float64 `json:"verbal"`
	Numerical  float64 `json:"numerical"`
	Spatial    float64 `json:"spatial"`
	Mechanical float64 `json:"mechanical"`
}

// PersonalityTraits are 0-100 per dimension, default 50
type PersonalityTraits struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// BehaviorData is the append-only activity log. Viewed lists are
// deduplicated; search history keeps only the most recent entries.
type BehaviorData struct {
	SearchHistory  []SearchEvent    `json:"search_history"`
	ViewedColleges []int64          `json:"viewed_colleges"`
	ViewedCareers  []int64          `json:"viewed_careers"`
	TimeSpent      []TimeSpentEvent `json:"time_spent"`
}

type SearchEvent struct {
	Query     string    `json:"query"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

type TimeSpentEvent struct {
	Section   string    `json:"section"`
	Duration  int       `json:"duration"` // seconds
	Timestamp time.Time `json:"timestamp"`
}

// RecommendationSet is a denormalized snapshot, fully overwritten on
// each regeneration and never merged
type RecommendationSet struct {
	Colleges    []CollegeRecommendation `json:"colleges"`
	Careers     []CareerRecommendation  `json:"careers"`
	Courses     []CourseRecommendation  `json:"courses"`
	GeneratedAt *time.Time              `json:"generated_at,omitempty"`
}

type CollegeRecommendation struct {
	CollegeID int64     `json:"college_id"`
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
	Timestamp time.Time `json:"timestamp"`
}

type CareerRecommendation struct {
	CareerID  int64     `json:"career_id"`
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
	Timestamp time.Time `json:"timestamp"`
}

type CourseRecommendation struct {
	CourseName string    `json:"course_name"`
	Score      int       `json:"score"`
	Reasons    []string  `json:"reasons"`
	Timestamp  time.Time `json:"timestamp"`
}

// Insight is a derived observation about the profile, independent of scoring
type Insight struct {
	Type    string `json:"type"` // academic, aptitude, behavior
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// JSONB plumbing

// Scan implements the sql.Scanner interface for AcademicBackground
func (a *AcademicBackground) Scan(value interface{}) error {
	return scanJSON(value, a)
}

// Value implements the driver.Valuer interface for AcademicBackground
func (a AcademicBackground) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface for Interests
func (i *Interests) Scan(value interface{}) error {
	return scanJSON(value, i)
}

// Value implements the driver.Valuer interface for Interests
func (i Interests) Value() (driver.Value, error) {
	return json.Marshal(i)
}

// Scan implements the sql.Scanner interface for Preferences
func (p *Preferences) Scan(value interface{}) error {
	return scanJSON(value, p)
}

// Value implements the driver.Valuer interface for Preferences
func (p Preferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface for AssessmentResults
func (a *AssessmentResults) Scan(value interface{}) error {
	return scanJSON(value, a)
}

// Value implements the driver.Valuer interface for AssessmentResults
func (a AssessmentResults) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface for BehaviorData
func (b *BehaviorData) Scan(value interface{}) error {
	return scanJSON(value, b)
}

// Value implements the driver.Valuer interface for BehaviorData
func (b BehaviorData) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements the sql.Scanner interface for RecommendationSet
func (s *RecommendationSet) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Value implements the driver.Valuer interface for RecommendationSet
func (s RecommendationSet) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	if bytes, ok := value.([]byte); ok {
		return json.Unmarshal(bytes, dest)
	}
	return nil
}
