// internal/recommendation/engine.go
// Pure scoring: candidates in, ranked recommendations out. No I/O here,
// so the whole engine is testable without a database.

package recommendation

import (
	"sort"

	"github.com/Shivansh-sp/eduvisor/internal/careers"
	"github.com/Shivansh-sp/eduvisor/internal/colleges"
	"github.com/Shivansh-sp/eduvisor/internal/courses"
)

const (
	baseScore = 50
	maxScore  = 100
)

// Engine ranks candidate colleges, careers and courses against a
// profile using the fixed rule tables.
type Engine struct {
	collegeTopK int
	careerTopK  int
	courseTopK  int
}

func NewEngine(collegeTopK, careerTopK, courseTopK int) *Engine {
	return &Engine{
		collegeTopK: collegeTopK,
		careerTopK:  careerTopK,
		courseTopK:  courseTopK,
	}
}

// ScoreColleges evaluates every rule against every candidate, sorts by
// score (ties broken by name) and keeps the top K.
func (e *Engine) ScoreColleges(candidates []*colleges.College, profile *UserProfile) []*ScoredCollege {
	scored := make([]*ScoredCollege, 0, len(candidates))
	for _, candidate := range candidates {
		score, reasons := applyRules(collegeRules, candidate, profile)
		scored = append(scored, &ScoredCollege{College: candidate, Score: score, Reasons: reasons})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].College.Name < scored[j].College.Name
	})
	return scored[:min(len(scored), e.collegeTopK)]
}

func (e *Engine) ScoreCareers(candidates []*careers.Career, profile *UserProfile) []*ScoredCareer {
	scored := make([]*ScoredCareer, 0, len(candidates))
	for _, candidate := range candidates {
		score, reasons := applyRules(careerRules, candidate, profile)
		scored = append(scored, &ScoredCareer{Career: candidate, Score: score, Reasons: reasons})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Career.Name < scored[j].Career.Name
	})
	return scored[:min(len(scored), e.careerTopK)]
}

func (e *Engine) ScoreCourses(candidates []*courses.Course, profile *UserProfile) []*ScoredCourse {
	scored := make([]*ScoredCourse, 0, len(candidates))
	for _, candidate := range candidates {
		score, reasons := applyRules(courseRules, candidate, profile)
		scored = append(scored, &ScoredCourse{Course: candidate, Score: score, Reasons: reasons})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Course.Name < scored[j].Course.Name
	})
	return scored[:min(len(scored), e.courseTopK)]
}

// applyRules runs every rule in order: each match adds its points and
// its reason. The total starts at the base score and is clamped at the
// maximum, but the reason list is never truncated.
func applyRules[C any](rules []Rule[C], candidate C, profile *UserProfile) (int, []string) {
	score := baseScore
	reasons := make([]string, 0, len(rules))
	for _, rule := range rules {
		if rule.Matches(candidate, profile) {
			score += rule.Points
			reasons = append(reasons, rule.Reason)
		}
	}
	if score > maxScore {
		score = maxScore
	}
	return score, reasons
}
