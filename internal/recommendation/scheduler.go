package recommendation

import (
	"context"
	"log"
	"time"
)

const refreshBatchSize = 500

// Scheduler periodically regenerates recommendation snapshots that have
// gone stale.
type Scheduler struct {
	service    Service
	hour       int
	staleAfter time.Duration
}

func NewScheduler(service Service, hour int, staleAfter time.Duration) *Scheduler {
	return &Scheduler{service: service, hour: hour, staleAfter: staleAfter}
}

func (s *Scheduler) Start(ctx context.Context) {
	go s.runDaily(ctx, s.hour, 0, s.refreshStale)
}

func (s *Scheduler) refreshStale(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-s.staleAfter)
	refreshed, err := s.service.RefreshStale(ctx, cutoff, refreshBatchSize)
	if err != nil {
		return err
	}
	log.Printf("Refreshed recommendations for %d stale profiles", refreshed)
	return nil
}

func (s *Scheduler) runDaily(ctx context.Context, hour, minute int, task func(context.Context) error) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(24 * time.Hour)
		}

		timer := time.NewTimer(next.Sub(now))

		select {
		case <-timer.C:
			if err := task(ctx); err != nil {
				log.Printf("Scheduled task failed: %v", err)
			}
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}
