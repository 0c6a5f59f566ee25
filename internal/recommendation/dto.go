// internal/recommendation/dto.go

package recommendation

import (
	"github.com/Shivansh-sp/eduvisor/internal/careers"
	"github.com/Shivansh-sp/eduvisor/internal/colleges"
	"github.com/Shivansh-sp/eduvisor/internal/courses"
)

// UpdateProfileRequest carries a partial profile update. Nil sections
// are left untouched; present sections replace the stored section whole.
type UpdateProfileRequest struct {
	AcademicBackground *AcademicBackground `json:"academic_background,omitempty"`
	Interests          *Interests          `json:"interests,omitempty"`
	Preferences        *Preferences        `json:"preferences,omitempty"`
	AssessmentResults  *AssessmentResults  `json:"assessment_results,omitempty"`
}

// TrackRequest records one user action against the behavior log
type TrackRequest struct {
	Action string    `json:"action" validate:"required"`
	Data   TrackData `json:"data"`
}

// TrackData is the union of payloads across track actions; each action
// reads only the fields it needs
type TrackData struct {
	Query     string `json:"query,omitempty"`
	Category  string `json:"category,omitempty"`
	CollegeID int64  `json:"college_id,omitempty"`
	CareerID  int64  `json:"career_id,omitempty"`
	Section   string `json:"section,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// ScoredCollege is a college with its computed score and the reasons
// contributed by matched rules, in rule order
type ScoredCollege struct {
	College *colleges.College `json:"college"`
	Score   int               `json:"score"`
	Reasons []string          `json:"reasons"`
}

type ScoredCareer struct {
	Career  *careers.Career `json:"career"`
	Score   int             `json:"score"`
	Reasons []string        `json:"reasons"`
}

type ScoredCourse struct {
	Course  *courses.Course `json:"course"`
	Score   int             `json:"score"`
	Reasons []string        `json:"reasons"`
}

// RecommendationsResponse is the full recommendation payload returned
// to the client
type RecommendationsResponse struct {
	Colleges    []*ScoredCollege `json:"colleges"`
	Careers     []*ScoredCareer  `json:"careers"`
	Courses     []*ScoredCourse  `json:"courses"`
	Insights    []Insight        `json:"insights"`
	GeneratedAt string           `json:"generated_at"`
}

// UpdateProfileResponse pairs the saved profile with the freshly
// regenerated recommendations
type UpdateProfileResponse struct {
	Profile         *UserProfile             `json:"profile"`
	Recommendations *RecommendationsResponse `json:"recommendations"`
}
