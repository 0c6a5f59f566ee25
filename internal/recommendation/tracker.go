// internal/recommendation/tracker.go

package recommendation

import "time"

// Tracker applies behavior events to a profile in memory. Persistence
// and conflict handling stay in the service.
type Tracker struct {
	searchHistoryLimit int
}

func NewTracker(searchHistoryLimit int) *Tracker {
	return &Tracker{searchHistoryLimit: searchHistoryLimit}
}

// Known track actions
const (
	ActionSearch      = "search"
	ActionViewCollege = "view_college"
	ActionViewCareer  = "view_career"
	ActionTimeSpent   = "time_spent"
)

// Apply mutates profile.BehaviorData for the given action. Unknown
// actions are ignored so older clients never fail tracking calls.
func (t *Tracker) Apply(profile *UserProfile, action string, data TrackData, now time.Time) {
	behavior := &profile.BehaviorData

	switch action {
	case ActionSearch:
		behavior.SearchHistory = append(behavior.SearchHistory, SearchEvent{
			Query:     data.Query,
			Category:  data.Category,
			Timestamp: now,
		})
		if excess := len(behavior.SearchHistory) - t.searchHistoryLimit; excess > 0 {
			behavior.SearchHistory = behavior.SearchHistory[excess:]
		}
	case ActionViewCollege:
		behavior.ViewedColleges = appendUnique(behavior.ViewedColleges, data.CollegeID)
	case ActionViewCareer:
		behavior.ViewedCareers = appendUnique(behavior.ViewedCareers, data.CareerID)
	case ActionTimeSpent:
		behavior.TimeSpent = append(behavior.TimeSpent, TimeSpentEvent{
			Section:   data.Section,
			Duration:  data.Duration,
			Timestamp: now,
		})
	}
}

func appendUnique(ids []int64, id int64) []int64 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
