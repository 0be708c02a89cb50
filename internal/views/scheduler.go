package views

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher is any view that can re-run its mount fetches.
type Refresher interface {
	Refresh(ctx context.Context)
}

const refreshTimeout = 30 * time.Second

// RefreshScheduler periodically refreshes registered views to bound
// staleness when nothing is being mutated. It refreshes caches directly
// and never publishes bus topics: topics announce successful writes,
// nothing else.
type RefreshScheduler struct {
	cron *cron.Cron

	mu    sync.Mutex
	views []Refresher
}

func NewRefreshScheduler() *RefreshScheduler {
	return &RefreshScheduler{cron: cron.New()}
}

// Register adds a view to the refresh rotation.
func (s *RefreshScheduler) Register(r Refresher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = append(s.views, r)
}

// Start begins the rotation on a cron spec such as "@every 5m".
func (s *RefreshScheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refreshAll); err != nil {
		log.Printf("Failed to create refresh job: %v", err)
		return err
	}

	log.Printf("Refresh scheduler started (%s)", spec)
	s.cron.Start()
	return nil
}

// Stop halts the rotation; a refresh already in flight finishes.
func (s *RefreshScheduler) Stop() {
	s.cron.Stop()
}

func (s *RefreshScheduler) refreshAll() {
	s.mu.Lock()
	views := make([]Refresher, len(s.views))
	copy(views, s.views)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	for _, v := range views {
		v.Refresh(ctx)
	}
}
