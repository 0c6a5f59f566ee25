package recommendation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivansh-sp/eduvisor/internal/careers"
	"github.com/Shivansh-sp/eduvisor/internal/colleges"
	"github.com/Shivansh-sp/eduvisor/internal/courses"
)

func testEngine() *Engine {
	return NewEngine(10, 10, 8)
}

func scienceProfile() *UserProfile {
	profile := NewUserProfile(42)
	profile.AcademicBackground.Stream = "Science"
	profile.Interests.Subjects = []string{"Physics"}
	profile.Interests.CareerFields = []string{"tech"}
	profile.Preferences.Location.PreferredStates = []string{"Karnataka"}
	profile.Preferences.Budget.Max = 200000
	profile.Preferences.CollegeTypes = []string{"Government"}
	profile.AssessmentResults.AptitudeScores.Logical = 80
	return profile
}

func TestScoreColleges_AllRulesMatchClampsAt100(t *testing.T) {
	college := &colleges.College{
		ID:            1,
		Name:          "National Institute of Technology",
		Type:          "Government",
		State:         "Karnataka",
		RatingOverall: 4.5,
		Programs: colleges.ProgramList{
			{Name: "B.Tech", Stream: "Science", AnnualFee: 100000},
		},
	}

	scored := testEngine().ScoreColleges([]*colleges.College{college}, scienceProfile())
	require.Len(t, scored, 1)

	// 50 + 15 + 10 + 10 + 10 + 15 = 110, clamped
	assert.Equal(t, 100, scored[0].Score)
	assert.Equal(t, []string{
		"Located in your preferred state",
		"Fits within your budget",
		"Matches your preferred college type",
		"Highly rated institution",
		"Offers programs in your stream",
	}, scored[0].Reasons)
}

func TestScoreColleges_NoRulesMatchKeepsBaseScore(t *testing.T) {
	college := &colleges.College{
		ID:            2,
		Name:          "Remote Arts College",
		Type:          "Private",
		State:         "Kerala",
		RatingOverall: 3.0,
		Programs: colleges.ProgramList{
			{Name: "B.A.", Stream: "Arts", AnnualFee: 300000},
		},
	}

	scored := testEngine().ScoreColleges([]*colleges.College{college}, scienceProfile())
	require.Len(t, scored, 1)
	assert.Equal(t, 50, scored[0].Score)
	assert.Empty(t, scored[0].Reasons)
}

func TestScoreColleges_AllStreamProgramCounts(t *testing.T) {
	college := &colleges.College{
		ID:   3,
		Name: "Universal College",
		Programs: colleges.ProgramList{
			{Name: "Foundation", Stream: "All", AnnualFee: 400000},
		},
	}

	scored := testEngine().ScoreColleges([]*colleges.College{college}, scienceProfile())
	require.Len(t, scored, 1)
	assert.Contains(t, scored[0].Reasons, "Offers programs in your stream")
}

func TestScoreCareers_IndustrySubstringMatch(t *testing.T) {
	career := &careers.Career{
		ID:         1,
		Name:       "Software Engineer",
		Industries: []string{"Technology"},
		Skills:     []string{"Analytical Thinking"},
		Demand:     "High",
		GrowthRate: 22,
	}

	scored := testEngine().ScoreCareers([]*careers.Career{career}, scienceProfile())
	require.Len(t, scored, 1)

	// 50 + 20 (industry "Technology" contains "tech") + 15 (logical 80 with
	// analytical skill) + 10 (high demand) + 10 (growth > 10) = 105, clamped
	assert.Equal(t, 100, scored[0].Score)
	assert.Contains(t, scored[0].Reasons, "Aligns with your career interests")
	assert.Contains(t, scored[0].Reasons, "Matches your strong logical aptitude")
}

func TestScoreCareers_AptitudeBelowThresholdDoesNotMatch(t *testing.T) {
	profile := scienceProfile()
	profile.AssessmentResults.AptitudeScores.Logical = 70 // not strictly above

	career := &careers.Career{
		ID:     2,
		Name:   "Data Analyst",
		Skills: []string{"analytical"},
	}

	scored := testEngine().ScoreCareers([]*careers.Career{career}, profile)
	require.Len(t, scored, 1)
	assert.NotContains(t, scored[0].Reasons, "Matches your strong logical aptitude")
}

func TestScoreCourses_StreamAndSubjectMatch(t *testing.T) {
	course := &courses.Course{
		ID:              1,
		Name:            "B.Sc. Physics",
		Category:        "science",
		Subjects:        []string{"Physics", "Mathematics"},
		FeesMax:         150000,
		CareerProspects: []string{"Technology Research"},
	}

	scored := testEngine().ScoreCourses([]*courses.Course{course}, scienceProfile())
	require.Len(t, scored, 1)

	// 50 + 20 (stream, case-insensitive) + 15 (subject) + 10 (budget) +
	// 15 (prospects) = 110, clamped
	assert.Equal(t, 100, scored[0].Score)
	assert.Len(t, scored[0].Reasons, 4)
}

func TestScoreIsDeterministic(t *testing.T) {
	profile := scienceProfile()
	pool := []*colleges.College{
		{ID: 1, Name: "Alpha", State: "Karnataka"},
		{ID: 2, Name: "Beta", Type: "Government"},
		{ID: 3, Name: "Gamma", RatingOverall: 4.2},
	}

	first := testEngine().ScoreColleges(pool, profile)
	second := testEngine().ScoreColleges(pool, profile)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].College.ID, second[i].College.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.Equal(t, first[i].Reasons, second[i].Reasons)
	}
}

func TestScoresStayWithinBounds(t *testing.T) {
	profile := scienceProfile()
	pool := []*careers.Career{
		{ID: 1, Name: "Technology Consultant", Industries: []string{"Technology"}, Demand: "High", GrowthRate: 30, Skills: []string{"analytical", "communication"}},
		{ID: 2, Name: "Librarian", Demand: "Low"},
	}

	for _, item := range testEngine().ScoreCareers(pool, profile) {
		assert.GreaterOrEqual(t, item.Score, 50)
		assert.LessOrEqual(t, item.Score, 100)
	}
}

func TestScoreColleges_SortsByScoreThenName(t *testing.T) {
	profile := scienceProfile()
	pool := []*colleges.College{
		{ID: 1, Name: "Zeta College", State: "Karnataka"},  // 65
		{ID: 2, Name: "Alpha College", State: "Karnataka"}, // 65, wins tie on name
		{ID: 3, Name: "Plain College"},                     // 50
	}

	scored := testEngine().ScoreColleges(pool, profile)
	require.Len(t, scored, 3)
	assert.Equal(t, "Alpha College", scored[0].College.Name)
	assert.Equal(t, "Zeta College", scored[1].College.Name)
	assert.Equal(t, "Plain College", scored[2].College.Name)
}

func TestScoreColleges_TruncatesToTopK(t *testing.T) {
	profile := scienceProfile()
	pool := make([]*colleges.College, 15)
	for i := range pool {
		pool[i] = &colleges.College{ID: int64(i + 1), Name: fmt.Sprintf("College %02d", i+1)}
	}

	scored := testEngine().ScoreColleges(pool, profile)
	assert.Len(t, scored, 10)
}

func TestScoreColleges_EmptyPool(t *testing.T) {
	scored := testEngine().ScoreColleges(nil, scienceProfile())
	assert.Empty(t, scored)
}

func TestScoreColleges_BudgetZeroNeverMatchesBudgetRule(t *testing.T) {
	profile := scienceProfile()
	profile.Preferences.Budget.Max = 0

	college := &colleges.College{
		ID:       1,
		Name:     "Free College",
		Programs: colleges.ProgramList{{Name: "B.Sc.", Stream: "Science", AnnualFee: 0}},
	}

	scored := testEngine().ScoreColleges([]*colleges.College{college}, profile)
	require.Len(t, scored, 1)
	assert.NotContains(t, scored[0].Reasons, "Fits within your budget")
}
