package recommendation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_SearchAppendsEvent(t *testing.T) {
	tracker := NewTracker(100)
	profile := NewUserProfile(1)
	now := time.Now()

	tracker.Apply(profile, ActionSearch, TrackData{Query: "iit delhi", Category: "colleges"}, now)

	require.Len(t, profile.BehaviorData.SearchHistory, 1)
	event := profile.BehaviorData.SearchHistory[0]
	assert.Equal(t, "iit delhi", event.Query)
	assert.Equal(t, "colleges", event.Category)
	assert.Equal(t, now, event.Timestamp)
}

func TestTracker_SearchHistoryKeepsMostRecent(t *testing.T) {
	tracker := NewTracker(100)
	profile := NewUserProfile(1)

	for i := 0; i < 120; i++ {
		tracker.Apply(profile, ActionSearch, TrackData{Query: fmt.Sprintf("query-%d", i)}, time.Now())
	}

	require.Len(t, profile.BehaviorData.SearchHistory, 100)
	assert.Equal(t, "query-20", profile.BehaviorData.SearchHistory[0].Query)
	assert.Equal(t, "query-119", profile.BehaviorData.SearchHistory[99].Query)
}

func TestTracker_ViewCollegeDeduplicates(t *testing.T) {
	tracker := NewTracker(100)
	profile := NewUserProfile(1)
	now := time.Now()

	tracker.Apply(profile, ActionViewCollege, TrackData{CollegeID: 7}, now)
	tracker.Apply(profile, ActionViewCollege, TrackData{CollegeID: 7}, now)
	tracker.Apply(profile, ActionViewCollege, TrackData{CollegeID: 9}, now)

	assert.Equal(t, []int64{7, 9}, profile.BehaviorData.ViewedColleges)
}

func TestTracker_ViewCareerDeduplicates(t *testing.T) {
	tracker := NewTracker(100)
	profile := NewUserProfile(1)
	now := time.Now()

	tracker.Apply(profile, ActionViewCareer, TrackData{CareerID: 3}, now)
	tracker.Apply(profile, ActionViewCareer, TrackData{CareerID: 3}, now)

	assert.Equal(t, []int64{3}, profile.BehaviorData.ViewedCareers)
}

func TestTracker_TimeSpentAppends(t *testing.T) {
	tracker := NewTracker(100)
	profile := NewUserProfile(1)
	now := time.Now()

	tracker.Apply(profile, ActionTimeSpent, TrackData{Section: "colleges", Duration: 45}, now)
	tracker.Apply(profile, ActionTimeSpent, TrackData{Section: "careers", Duration: 30}, now)

	require.Len(t, profile.BehaviorData.TimeSpent, 2)
	assert.Equal(t, "colleges", profile.BehaviorData.TimeSpent[0].Section)
	assert.Equal(t, 45, profile.BehaviorData.TimeSpent[0].Duration)
}

func TestTracker_UnknownActionIsIgnored(t *testing.T) {
	tracker := NewTracker(100)
	profile := NewUserProfile(1)

	tracker.Apply(profile, "page_scroll", TrackData{Section: "home"}, time.Now())

	assert.Empty(t, profile.BehaviorData.SearchHistory)
	assert.Empty(t, profile.BehaviorData.ViewedColleges)
	assert.Empty(t, profile.BehaviorData.ViewedCareers)
	assert.Empty(t, profile.BehaviorData.TimeSpent)
}
