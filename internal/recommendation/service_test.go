package recommendation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivansh-sp/eduvisor/internal/careers"
	"github.com/Shivansh-sp/eduvisor/internal/colleges"
	"github.com/Shivansh-sp/eduvisor/internal/courses"
)

// fakeRepo keeps profiles in memory and can simulate one save conflict
type fakeRepo struct {
	profiles      map[int64]*UserProfile
	conflictsLeft int
	saves         int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[int64]*UserProfile)}
}

func (r *fakeRepo) GetByUserID(ctx context.Context, userID int64) (*UserProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeRepo) Create(ctx context.Context, profile *UserProfile) error {
	if _, ok := r.profiles[profile.UserID]; ok {
		return nil
	}
	profile.Version = 1
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeRepo) Save(ctx context.Context, profile *UserProfile) error {
	r.saves++
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return ErrProfileConflict
	}
	profile.Version++
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeRepo) StaleProfileUserIDs(ctx context.Context, cutoff time.Time, limit int) ([]int64, error) {
	return nil, nil
}

type fakeCollegeSource struct{ pool []*colleges.College }

func (s *fakeCollegeSource) FindCandidates(ctx context.Context, filter *colleges.CandidateFilter) ([]*colleges.College, error) {
	return s.pool, nil
}

type fakeCareerSource struct{ pool []*careers.Career }

func (s *fakeCareerSource) FindCandidates(ctx context.Context, limit int) ([]*careers.Career, error) {
	return s.pool, nil
}

type fakeCourseSource struct{ pool []*courses.Course }

func (s *fakeCourseSource) FindCandidates(ctx context.Context, limit int) ([]*courses.Course, error) {
	return s.pool, nil
}

func newTestService(repo Repository) Service {
	return NewService(
		repo,
		&fakeCollegeSource{pool: []*colleges.College{
			{ID: 1, Name: "Alpha Institute", State: "Karnataka"},
		}},
		&fakeCareerSource{pool: []*careers.Career{
			{ID: 1, Name: "Software Engineer", Demand: "High"},
		}},
		&fakeCourseSource{pool: []*courses.Course{
			{ID: 1, Name: "B.Sc. Physics", Category: "Science"},
		}},
		NewEngine(10, 10, 8),
		NewTracker(100),
		NewCache(nil, 0),
		Limits{CollegeCandidates: 20, CareerCandidates: 20, CourseCandidates: 15},
	)
}

func TestGetOrCreateProfile_CreatesOnFirstAccess(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	profile, err := svc.GetOrCreateProfile(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.UserID)

	again, err := svc.GetOrCreateProfile(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, profile.UserID, again.UserID)
	assert.Len(t, repo.profiles, 1)
}

func TestGetRecommendations_PersistsSnapshot(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	response, err := svc.GetRecommendations(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, response.Colleges, 1)
	require.Len(t, response.Careers, 1)
	require.Len(t, response.Courses, 1)
	assert.NotEmpty(t, response.GeneratedAt)

	stored := repo.profiles[42]
	require.NotNil(t, stored)
	require.Len(t, stored.Recommendations.Colleges, 1)
	assert.Equal(t, int64(1), stored.Recommendations.Colleges[0].CollegeID)
	assert.NotNil(t, stored.Recommendations.GeneratedAt)
}

func TestGetRecommendations_RetriesOnceOnConflict(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.GetOrCreateProfile(context.Background(), 42)
	require.NoError(t, err)

	repo.conflictsLeft = 1
	response, err := svc.GetRecommendations(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, response)
	assert.Equal(t, 2, repo.saves)
}

func TestTrackBehavior_RetriesOnceOnConflict(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.GetOrCreateProfile(context.Background(), 42)
	require.NoError(t, err)

	repo.conflictsLeft = 1
	err = svc.TrackBehavior(context.Background(), 42, &TrackRequest{
		Action: ActionViewCollege,
		Data:   TrackData{CollegeID: 7},
	})
	require.NoError(t, err)

	stored := repo.profiles[42]
	assert.Equal(t, []int64{7}, stored.BehaviorData.ViewedColleges)
}

func TestUpdateProfile_RegeneratesRecommendations(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	response, err := svc.UpdateProfile(context.Background(), 42, &UpdateProfileRequest{
		Preferences: &Preferences{
			Location:     LocationPreference{PreferredStates: []string{"Karnataka"}},
			Budget:       BudgetRange{Max: 200000},
			CollegeTypes: []string{"Government"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Karnataka"}, response.Profile.Preferences.Location.PreferredStates)
	require.Len(t, response.Recommendations.Colleges, 1)
	// Alpha Institute is in the preferred state now
	assert.Equal(t, 65, response.Recommendations.Colleges[0].Score)
}
