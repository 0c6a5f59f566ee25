package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserProfileDefaults(t *testing.T) {
	profile := NewUserProfile(42)

	assert.Equal(t, int64(42), profile.UserID)
	assert.Zero(t, profile.AcademicBackground.OverallPercentage)
	assert.NotNil(t, profile.Interests.Subjects)
	assert.Equal(t, float64(500000), profile.Preferences.Budget.Max)
	assert.Equal(t, []string{"Government", "Private"}, profile.Preferences.CollegeTypes)

	// aptitude unset, personality neutral
	assert.Zero(t, profile.AssessmentResults.AptitudeScores.Logical)
	assert.Equal(t, float64(50), profile.AssessmentResults.PersonalityTraits.Openness)

	assert.Empty(t, profile.BehaviorData.SearchHistory)
	assert.Nil(t, profile.Recommendations.GeneratedAt)
}

func TestApplyProfileUpdateReplacesOnlyPresentSections(t *testing.T) {
	profile := NewUserProfile(1)
	profile.Interests.Subjects = []string{"History"}

	update := &UpdateProfileRequest{
		AcademicBackground: &AcademicBackground{Stream: "Commerce", OverallPercentage: 78},
	}
	applyProfileUpdate(profile, update)

	assert.Equal(t, "Commerce", profile.AcademicBackground.Stream)
	assert.Equal(t, []string{"History"}, profile.Interests.Subjects)
}

func TestApplyProfileUpdateReplacesSectionWholesale(t *testing.T) {
	profile := NewUserProfile(1)
	profile.Preferences.Location.PreferredStates = []string{"Karnataka"}

	update := &UpdateProfileRequest{
		Preferences: &Preferences{CollegeTypes: []string{"Deemed"}},
	}
	applyProfileUpdate(profile, update)

	assert.Equal(t, []string{"Deemed"}, profile.Preferences.CollegeTypes)
	assert.Empty(t, profile.Preferences.Location.PreferredStates)
}
