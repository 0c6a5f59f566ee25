package recommendation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivansh-sp/eduvisor/internal/auth"
)

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), auth.UserIDKey, int64(42))
	return req.WithContext(ctx)
}

func TestGetRecommendationsHandler(t *testing.T) {
	handler := NewHandler(newTestService(newFakeRepo()))

	rec := httptest.NewRecorder()
	handler.GetRecommendations(rec, authedRequest("GET", "/api/recommendations", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                    `json:"success"`
		Data    RecommendationsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Len(t, envelope.Data.Colleges, 1)
}

func TestGetRecommendationsHandler_Unauthenticated(t *testing.T) {
	handler := NewHandler(newTestService(newFakeRepo()))

	rec := httptest.NewRecorder()
	handler.GetRecommendations(rec, httptest.NewRequest("GET", "/api/recommendations", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTrackBehaviorHandler(t *testing.T) {
	repo := newFakeRepo()
	handler := NewHandler(newTestService(repo))

	body := `{"action":"view_college","data":{"college_id":7}}`
	rec := httptest.NewRecorder()
	handler.TrackBehavior(rec, authedRequest("POST", "/api/recommendations/track", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{7}, repo.profiles[42].BehaviorData.ViewedColleges)
}

func TestTrackBehaviorHandler_MissingAction(t *testing.T) {
	handler := NewHandler(newTestService(newFakeRepo()))

	rec := httptest.NewRecorder()
	handler.TrackBehavior(rec, authedRequest("POST", "/api/recommendations/track", `{"data":{}}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfileHandler(t *testing.T) {
	handler := NewHandler(newTestService(newFakeRepo()))

	body := `{"academic_background":{"stream":"Science","overall_percentage":90}}`
	rec := httptest.NewRecorder()
	handler.UpdateProfile(rec, authedRequest("PUT", "/api/recommendations/profile", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data UpdateProfileResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Science", envelope.Data.Profile.AcademicBackground.Stream)
	assert.NotNil(t, envelope.Data.Recommendations)
}
