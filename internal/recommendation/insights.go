// internal/recommendation/insights.go
// Insights are derived observations about the profile, generated
// alongside recommendations but independent of scoring. At most one
// insight per type, so a response carries between zero and three.

package recommendation

import (
	"fmt"
	"sort"
	"strings"
)

const (
	highAchieverThreshold   = 85
	strongAptitudeThreshold = 80
)

// aptitude dimensions in fixed report order; the first maximum wins
var aptitudeOrder = []string{"logical", "verbal", "numerical", "spatial", "mechanical"}

// GenerateInsights inspects academics, aptitude and behavior and
// returns the applicable insights in that order.
func GenerateInsights(profile *UserProfile) []Insight {
	insights := make([]Insight, 0, 3)

	if insight, ok := academicInsight(profile); ok {
		insights = append(insights, insight)
	}
	if insight, ok := aptitudeInsight(profile); ok {
		insights = append(insights, insight)
	}
	if insight, ok := behaviorInsight(profile); ok {
		insights = append(insights, insight)
	}
	return insights
}

func academicInsight(profile *UserProfile) (Insight, bool) {
	if profile.AcademicBackground.OverallPercentage <= highAchieverThreshold {
		return Insight{}, false
	}
	return Insight{
		Type:    "academic",
		Title:   "Strong Academic Performance",
		Message: "Your excellent academic record opens doors to top-tier institutions.",
		Action:  "Explore premier colleges and competitive entrance exams",
	}, true
}

func aptitudeInsight(profile *UserProfile) (Insight, bool) {
	scores := profile.AssessmentResults.AptitudeScores
	byName := map[string]float64{
		"logical":    scores.Logical,
		"verbal":     scores.Verbal,
		"numerical":  scores.Numerical,
		"spatial":    scores.Spatial,
		"mechanical": scores.Mechanical,
	}

	strongest := ""
	best := 0.0
	for _, name := range aptitudeOrder {
		if byName[name] > best {
			strongest = name
			best = byName[name]
		}
	}
	if strongest == "" || best <= strongAptitudeThreshold {
		return Insight{}, false
	}
	return Insight{
		Type:    "aptitude",
		Title:   fmt.Sprintf("Strong %s Aptitude", titleCase(strongest)),
		Message: fmt.Sprintf("Your %s aptitude stands out in your assessment results.", strongest),
		Action:  fmt.Sprintf("Consider careers that reward %s thinking", strongest),
	}, true
}

func behaviorInsight(profile *UserProfile) (Insight, bool) {
	totals := make(map[string]int)
	for _, event := range profile.BehaviorData.TimeSpent {
		if event.Section != "" {
			totals[event.Section] += event.Duration
		}
	}
	if len(totals) == 0 {
		return Insight{}, false
	}

	sections := make([]string, 0, len(totals))
	for section := range totals {
		sections = append(sections, section)
	}
	// ties resolve to the lexicographically smallest section
	sort.Strings(sections)

	top := sections[0]
	for _, section := range sections[1:] {
		if totals[section] > totals[top] {
			top = section
		}
	}
	return Insight{
		Type:    "behavior",
		Title:   fmt.Sprintf("Focused on %s", titleCase(top)),
		Message: fmt.Sprintf("You spend most of your time exploring %s.", top),
		Action:  fmt.Sprintf("Dive deeper into %s recommendations tailored for you", top),
	}, true
}

func titleCase(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
