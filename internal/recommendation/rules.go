// internal/recommendation/rules.go
// The fixed-weight scoring rules, kept as ordered data so the rule sets
// are testable and extensible without touching the engine. Rules are
// additive only, never subtract, and never short-circuit each other.

package recommendation

import (
	"strings"

	"github.com/Shivansh-sp/eduvisor/internal/careers"
	"github.com/Shivansh-sp/eduvisor/internal/colleges"
	"github.com/Shivansh-sp/eduvisor/internal/courses"
)

// Rule is one additive scoring rule: a fixed point value, a fixed
// reason string, and a predicate over (candidate, profile)
type Rule[C any] struct {
	Name    string
	Points  int
	Reason  string
	Matches func(candidate C, profile *UserProfile) bool
}

var collegeRules = []Rule[*colleges.College]{
	{
		Name:   "preferred_state",
		Points: 15,
		Reason: "Located in your preferred state",
		Matches: func(c *colleges.College, p *UserProfile) bool {
			return containsString(p.Preferences.Location.PreferredStates, c.State)
		},
	},
	{
		Name:   "within_budget",
		Points: 10,
		Reason: "Fits within your budget",
		Matches: func(c *colleges.College, p *UserProfile) bool {
			max := p.Preferences.Budget.Max
			return max > 0 && c.AverageAnnualFee() <= max
		},
	},
	{
		Name:   "preferred_type",
		Points: 10,
		Reason: "Matches your preferred college type",
		Matches: func(c *colleges.College, p *UserProfile) bool {
			return containsString(p.Preferences.CollegeTypes, c.Type)
		},
	},
	{
		Name:   "highly_rated",
		Points: 10,
		Reason: "Highly rated institution",
		Matches: func(c *colleges.College, p *UserProfile) bool {
			return c.RatingOverall >= 4
		},
	},
	{
		Name:   "stream_program",
		Points: 15,
		Reason: "Offers programs in your stream",
		Matches: func(c *colleges.College, p *UserProfile) bool {
			stream := p.AcademicBackground.Stream
			return stream != "" && c.HasStreamProgram(stream)
		},
	},
}

var careerRules = []Rule[*careers.Career]{
	{
		Name:   "interest_match",
		Points: 20,
		Reason: "Aligns with your career interests",
		Matches: func(c *careers.Career, p *UserProfile) bool {
			fields := p.Interests.CareerFields
			if anyContainsAnyTerm([]string{c.Name}, fields) {
				return true
			}
			return anyContainsAnyTerm(c.Industries, fields)
		},
	},
	{
		Name:   "logical_aptitude",
		Points: 15,
		Reason: "Matches your strong logical aptitude",
		Matches: func(c *careers.Career, p *UserProfile) bool {
			return p.AssessmentResults.AptitudeScores.Logical > 70 &&
				anyContainsTerm(c.Skills, "analytical")
		},
	},
	{
		Name:   "verbal_aptitude",
		Points: 15,
		Reason: "Matches your strong verbal aptitude",
		Matches: func(c *careers.Career, p *UserProfile) bool {
			return p.AssessmentResults.AptitudeScores.Verbal > 70 &&
				anyContainsTerm(c.Skills, "communication")
		},
	},
	{
		Name:   "stream_courses",
		Points: 15,
		Reason: "Has qualifying courses in your academic stream",
		Matches: func(c *careers.Career, p *UserProfile) bool {
			stream := p.AcademicBackground.Stream
			return stream != "" && anyContainsTerm(c.Courses, stream)
		},
	},
	{
		Name:   "high_demand",
		Points: 10,
		Reason: "High demand career",
		Matches: func(c *careers.Career, p *UserProfile) bool {
			return c.Demand == "High"
		},
	},
	{
		Name:   "growth_outlook",
		Points: 10,
		Reason: "Strong growth outlook",
		Matches: func(c *careers.Career, p *UserProfile) bool {
			return c.GrowthRate > 10
		},
	},
}

var courseRules = []Rule[*courses.Course]{
	{
		Name:   "stream_match",
		Points: 20,
		Reason: "Matches your academic stream",
		Matches: func(c *courses.Course, p *UserProfile) bool {
			stream := p.AcademicBackground.Stream
			return stream != "" && strings.EqualFold(c.Category, stream)
		},
	},
	{
		Name:   "subject_interest",
		Points: 15,
		Reason: "Covers subjects you're interested in",
		Matches: func(c *courses.Course, p *UserProfile) bool {
			return anyContainsAnyTerm(c.Subjects, p.Interests.Subjects)
		},
	},
	{
		Name:   "within_budget",
		Points: 10,
		Reason: "Fits within your budget",
		Matches: func(c *courses.Course, p *UserProfile) bool {
			max := p.Preferences.Budget.Max
			return max > 0 && c.FeesMax <= max
		},
	},
	{
		Name:   "career_prospects",
		Points: 15,
		Reason: "Leads to careers you're interested in",
		Matches: func(c *courses.Course, p *UserProfile) bool {
			return anyContainsAnyTerm(c.CareerProspects, p.Interests.CareerFields)
		},
	},
}

// Matching helpers. All matching is case-insensitive; a candidate value
// matches a user term when it contains that term as a substring
// (industries "Technology" matches interest "tech").

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func anyContainsTerm(values []string, term string) bool {
	term = strings.ToLower(term)
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}
	return false
}

func anyContainsAnyTerm(values []string, terms []string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if anyContainsTerm(values, term) {
			return true
		}
	}
	return false
}
