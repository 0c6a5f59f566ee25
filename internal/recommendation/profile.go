// internal/recommendation/profile.go
// Profile construction with explicit defaults. Every numeric field gets
// a concrete zero/default value at creation time so downstream scoring
// never sees missing sub-structures.

package recommendation

// NewUserProfile builds a fresh profile with default sub-structures
func NewUserProfile(userID int64) *UserProfile {
	return &UserProfile{
		UserID: userID,
		AcademicBackground: AcademicBackground{
			Subjects:          []string{},
			Grades:            []SubjectGrade{},
			OverallPercentage: 0,
		},
		Interests: Interests{
			Subjects:     []string{},
			Activities:   []string{},
			CareerFields: []string{},
		},
		Preferences: Preferences{
			Location: LocationPreference{
				PreferredStates: []string{},
				PreferredCities: []string{},
			},
			Budget: BudgetRange{
				Min: 0,
				Max: 500000,
			},
			CollegeTypes: []string{"Government", "Private"},
			CourseTypes:  []string{},
		},
		AssessmentResults: AssessmentResults{
			AptitudeScores: AptitudeScores{
				Logical:    0,
				Verbal:     0,
				Numerical:  0,
				Spatial:    0,
				Mechanical: 0,
			},
			PersonalityTraits: PersonalityTraits{
				Openness:          50,
				Conscientiousness: 50,
				Extraversion:      50,
				Agreeableness:     50,
				Neuroticism:       50,
			},
			CareerMatches: []string{},
		},
		BehaviorData: BehaviorData{
			SearchHistory:  []SearchEvent{},
			ViewedColleges: []int64{},
			ViewedCareers:  []int64{},
			TimeSpent:      []TimeSpentEvent{},
		},
		Recommendations: RecommendationSet{
			Colleges: []CollegeRecommendation{},
			Careers:  []CareerRecommendation{},
			Courses:  []CourseRecommendation{},
		},
	}
}
