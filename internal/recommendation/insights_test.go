package recommendation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInsights_EmptyProfile(t *testing.T) {
	insights := GenerateInsights(NewUserProfile(1))
	assert.Empty(t, insights)
}

func TestGenerateInsights_AcademicRequiresAbove85(t *testing.T) {
	profile := NewUserProfile(1)
	profile.AcademicBackground.OverallPercentage = 85

	assert.Empty(t, GenerateInsights(profile))

	profile.AcademicBackground.OverallPercentage = 85.5
	insights := GenerateInsights(profile)
	require.Len(t, insights, 1)
	assert.Equal(t, "academic", insights[0].Type)
}

func TestGenerateInsights_AptitudeRequiresAbove80(t *testing.T) {
	profile := NewUserProfile(1)
	profile.AssessmentResults.AptitudeScores.Logical = 80

	assert.Empty(t, GenerateInsights(profile))

	profile.AssessmentResults.AptitudeScores.Logical = 81
	insights := GenerateInsights(profile)
	require.Len(t, insights, 1)
	assert.Equal(t, "aptitude", insights[0].Type)
	assert.Equal(t, "Strong Logical Aptitude", insights[0].Title)
}

func TestGenerateInsights_AptitudePicksStrongestDimension(t *testing.T) {
	profile := NewUserProfile(1)
	profile.AssessmentResults.AptitudeScores.Numerical = 82
	profile.AssessmentResults.AptitudeScores.Spatial = 90

	insights := GenerateInsights(profile)
	require.Len(t, insights, 1)
	assert.Equal(t, "Strong Spatial Aptitude", insights[0].Title)
}

func TestGenerateInsights_AptitudeTieGoesToReportOrder(t *testing.T) {
	profile := NewUserProfile(1)
	profile.AssessmentResults.AptitudeScores.Verbal = 85
	profile.AssessmentResults.AptitudeScores.Mechanical = 85

	insights := GenerateInsights(profile)
	require.Len(t, insights, 1)
	assert.Equal(t, "Strong Verbal Aptitude", insights[0].Title)
}

func TestGenerateInsights_BehaviorUsesLargestTimeSpentSection(t *testing.T) {
	now := time.Now()
	profile := NewUserProfile(1)
	profile.BehaviorData.TimeSpent = []TimeSpentEvent{
		{Section: "colleges", Duration: 120, Timestamp: now},
		{Section: "colleges", Duration: 60, Timestamp: now},
		{Section: "careers", Duration: 90, Timestamp: now},
	}

	insights := GenerateInsights(profile)
	require.Len(t, insights, 1)
	assert.Equal(t, "behavior", insights[0].Type)
	assert.Equal(t, "Focused on Colleges", insights[0].Title)
}

func TestGenerateInsights_BehaviorTieIsLexicographic(t *testing.T) {
	now := time.Now()
	profile := NewUserProfile(1)
	profile.BehaviorData.TimeSpent = []TimeSpentEvent{
		{Section: "courses", Duration: 30, Timestamp: now},
		{Section: "careers", Duration: 30, Timestamp: now},
	}

	insights := GenerateInsights(profile)
	require.Len(t, insights, 1)
	assert.Equal(t, "Focused on Careers", insights[0].Title)
}

func TestGenerateInsights_NoTimeSpentNoBehaviorInsight(t *testing.T) {
	profile := NewUserProfile(1)
	profile.BehaviorData.SearchHistory = []SearchEvent{
		{Query: "iit", Category: "colleges", Timestamp: time.Now()},
	}

	assert.Empty(t, GenerateInsights(profile))
}

func TestGenerateInsights_AllThreeTypes(t *testing.T) {
	profile := NewUserProfile(1)
	profile.AcademicBackground.OverallPercentage = 92
	profile.AssessmentResults.AptitudeScores.Logical = 88
	profile.BehaviorData.TimeSpent = []TimeSpentEvent{
		{Section: "colleges", Duration: 300, Timestamp: time.Now()},
	}

	insights := GenerateInsights(profile)
	require.Len(t, insights, 3)
	assert.Equal(t, "academic", insights[0].Type)
	assert.Equal(t, "aptitude", insights[1].Type)
	assert.Equal(t, "behavior", insights[2].Type)
}
