// internal/recommendation/service.go

package recommendation

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Shivansh-sp/eduvisor/internal/careers"
	"github.com/Shivansh-sp/eduvisor/internal/colleges"
	"github.com/Shivansh-sp/eduvisor/internal/courses"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileConflict = errors.New("profile was modified concurrently")
	ErrProfileCreation = errors.New("failed to create profile")
)

// Candidate sources, satisfied by the catalog services
type CollegeSource interface {
	FindCandidates(ctx context.Context, filter *colleges.CandidateFilter) ([]*colleges.College, error)
}

type CareerSource interface {
	FindCandidates(ctx context.Context, limit int) ([]*careers.Career, error)
}

type CourseSource interface {
	FindCandidates(ctx context.Context, limit int) ([]*courses.Course, error)
}

type Service interface {
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
	GetOrCreateProfile(ctx context.Context, userID int64) (*UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*UpdateProfileResponse, error)
	TrackBehavior(ctx context.Context, userID int64, req *TrackRequest) error

	// GetRecommendations serves from cache when possible, generating and
	// persisting a fresh set otherwise
	GetRecommendations(ctx context.Context, userID int64) (*RecommendationsResponse, error)

	// RefreshRecommendations always regenerates, bypassing the cache
	RefreshRecommendations(ctx context.Context, userID int64) (*RecommendationsResponse, error)

	// RefreshStale regenerates recommendations for users whose snapshot
	// is older than the cutoff. Used by the scheduler.
	RefreshStale(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

// Limits bounds candidate pools pulled from the catalogs
type Limits struct {
	CollegeCandidates int
	CareerCandidates  int
	CourseCandidates  int
}

type service struct {
	repo     Repository
	colleges CollegeSource
	careers  CareerSource
	courses  CourseSource
	engine   *Engine
	tracker  *Tracker
	cache    *Cache
	limits   Limits
}

func NewService(repo Repository, collegeSrc CollegeSource, careerSrc CareerSource, courseSrc CourseSource,
	engine *Engine, tracker *Tracker, cache *Cache, limits Limits) Service {
	return &service{
		repo:     repo,
		colleges: collegeSrc,
		careers:  careerSrc,
		courses:  courseSrc,
		engine:   engine,
		tracker:  tracker,
		cache:    cache,
		limits:   limits,
	}
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*UserProfile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// GetOrCreateProfile returns the user's profile, creating a default one
// on first access. Concurrent first accesses converge on a single row.
func (s *service) GetOrCreateProfile(ctx context.Context, userID int64) (*UserProfile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	profile = NewUserProfile(userID)
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, ErrProfileCreation
	}
	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(profile, req)

	// regenerate in the same save so the stored snapshot always matches
	// the stored preferences
	response, err := s.score(ctx, profile, "profile_update")
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, profile); err != nil {
		if errors.Is(err, ErrProfileConflict) {
			profileConflictsTotal.Inc()
		}
		return nil, err
	}

	s.cache.Set(ctx, userID, response)
	return &UpdateProfileResponse{Profile: profile, Recommendations: response}, nil
}

// applyProfileUpdate replaces whole sections; nil sections are untouched
func applyProfileUpdate(profile *UserProfile, req *UpdateProfileRequest) {
	if req.AcademicBackground != nil {
		profile.AcademicBackground = *req.AcademicBackground
	}
	if req.Interests != nil {
		profile.Interests = *req.Interests
	}
	if req.Preferences != nil {
		profile.Preferences = *req.Preferences
	}
	if req.AssessmentResults != nil {
		profile.AssessmentResults = *req.AssessmentResults
	}
}

func (s *service) TrackBehavior(ctx context.Context, userID int64, req *TrackRequest) error {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return err
	}

	s.tracker.Apply(profile, req.Action, req.Data, time.Now().UTC())
	behaviorEventsTotal.WithLabelValues(req.Action).Inc()

	err = s.repo.Save(ctx, profile)
	if errors.Is(err, ErrProfileConflict) {
		// lost the race: reload and replay the event once
		profileConflictsTotal.Inc()
		profile, err = s.repo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		s.tracker.Apply(profile, req.Action, req.Data, time.Now().UTC())
		err = s.repo.Save(ctx, profile)
	}
	if err != nil {
		return err
	}

	// stale insights would otherwise survive until the TTL expires
	s.cache.Invalidate(ctx, userID)
	return nil
}

func (s *service) GetRecommendations(ctx context.Context, userID int64) (*RecommendationsResponse, error) {
	if cached := s.cache.Get(ctx, userID); cached != nil {
		recommendationCacheHits.WithLabelValues("hit").Inc()
		return cached, nil
	}
	recommendationCacheHits.WithLabelValues("miss").Inc()

	return s.regenerate(ctx, userID, "request")
}

func (s *service) RefreshRecommendations(ctx context.Context, userID int64) (*RecommendationsResponse, error) {
	return s.regenerate(ctx, userID, "refresh")
}

func (s *service) RefreshStale(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	userIDs, err := s.repo.StaleProfileUserIDs(ctx, cutoff, limit)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, userID := range userIDs {
		if _, err := s.regenerate(ctx, userID, "scheduled"); err != nil {
			log.Printf("recommendation refresh failed for user %d: %v", userID, err)
			continue
		}
		refreshed++
	}
	return refreshed, nil
}

// regenerate scores fresh candidate pools, persists the snapshot and
// updates the cache. A concurrent save conflict is retried once against
// the reloaded profile.
func (s *service) regenerate(ctx context.Context, userID int64, trigger string) (*RecommendationsResponse, error) {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	response, err := s.score(ctx, profile, trigger)
	if err != nil {
		return nil, err
	}

	err = s.repo.Save(ctx, profile)
	if errors.Is(err, ErrProfileConflict) {
		profileConflictsTotal.Inc()
		profile, err = s.repo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		response, err = s.score(ctx, profile, trigger)
		if err != nil {
			return nil, err
		}
		err = s.repo.Save(ctx, profile)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, userID, response)
	return response, nil
}

// score fetches candidate pools, runs the engine and writes the
// resulting snapshot into profile.Recommendations. It does not persist.
func (s *service) score(ctx context.Context, profile *UserProfile, trigger string) (*RecommendationsResponse, error) {
	filter := &colleges.CandidateFilter{
		States:    profile.Preferences.Location.PreferredStates,
		Types:     profile.Preferences.CollegeTypes,
		MaxBudget: profile.Preferences.Budget.Max,
		Limit:     s.limits.CollegeCandidates,
	}
	collegePool, err := s.colleges.FindCandidates(ctx, filter)
	if err != nil {
		return nil, err
	}
	careerPool, err := s.careers.FindCandidates(ctx, s.limits.CareerCandidates)
	if err != nil {
		return nil, err
	}
	coursePool, err := s.courses.FindCandidates(ctx, s.limits.CourseCandidates)
	if err != nil {
		return nil, err
	}

	scoredColleges := s.engine.ScoreColleges(collegePool, profile)
	scoredCareers := s.engine.ScoreCareers(careerPool, profile)
	scoredCourses := s.engine.ScoreCourses(coursePool, profile)

	for _, item := range scoredColleges {
		recommendationScores.WithLabelValues("college").Observe(float64(item.Score))
	}
	for _, item := range scoredCareers {
		recommendationScores.WithLabelValues("career").Observe(float64(item.Score))
	}
	for _, item := range scoredCourses {
		recommendationScores.WithLabelValues("course").Observe(float64(item.Score))
	}

	now := time.Now().UTC()
	profile.Recommendations = buildSnapshot(scoredColleges, scoredCareers, scoredCourses, now)
	recommendationsGenerated.WithLabelValues(trigger).Inc()

	return &RecommendationsResponse{
		Colleges:    scoredColleges,
		Careers:     scoredCareers,
		Courses:     scoredCourses,
		Insights:    GenerateInsights(profile),
		GeneratedAt: now.Format(time.RFC3339),
	}, nil
}

// buildSnapshot denormalizes scored results into the stored set. The
// snapshot fully replaces the previous one and is never merged.
func buildSnapshot(scoredColleges []*ScoredCollege, scoredCareers []*ScoredCareer, scoredCourses []*ScoredCourse, now time.Time) RecommendationSet {
	set := RecommendationSet{
		Colleges:    make([]CollegeRecommendation, 0, len(scoredColleges)),
		Careers:     make([]CareerRecommendation, 0, len(scoredCareers)),
		Courses:     make([]CourseRecommendation, 0, len(scoredCourses)),
		GeneratedAt: &now,
	}
	for _, item := range scoredColleges {
		set.Colleges = append(set.Colleges, CollegeRecommendation{
			CollegeID: item.College.ID,
			Score:     item.Score,
			Reasons:   item.Reasons,
			Timestamp: now,
		})
	}
	for _, item := range scoredCareers {
		set.Careers = append(set.Careers, CareerRecommendation{
			CareerID:  item.Career.ID,
			Score:     item.Score,
			Reasons:   item.Reasons,
			Timestamp: now,
		})
	}
	for _, item := range scoredCourses {
		set.Courses = append(set.Courses, CourseRecommendation{
			CourseName: item.Course.Name,
			Score:      item.Score,
			Reasons:    item.Reasons,
			Timestamp:  now,
		})
	}
	return set
}
