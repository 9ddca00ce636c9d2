package service

import (
	"context"
	"studiobook/pkg/config"
	"sync"
	"time"
)

// Reaper periodically deletes held bookings whose window has passed, freeing
// their slots. It never touches confirmed bookings; the delete filter in the
// repository matches held status only.
type Reaper struct {
	service  BookingService
	interval time.Duration
	cfg      *config.Config

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewReaper(service BookingService, cfg *config.Config) *Reaper {
	return &Reaper{
		service:  service,
		interval: cfg.ReaperInterval,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the sweep loop until Stop is called. Blocks; run in a goroutine.
func (r *Reaper) Start() {
	defer close(r.doneCh)

	r.cfg.Log.Info("Hold reaper started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			r.cfg.Log.Info("Hold reaper stopped")
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *Reaper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), r.interval)
	defer cancel()

	if _, err := r.service.ReapExpired(ctx); err != nil {
		// Leftover holds are swept on the next tick
		r.cfg.Log.Error("Hold sweep failed", "error", err)
	}
}

// Stop signals the loop to exit and waits for the in-flight sweep to finish.
func (r *Reaper) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	<-r.doneCh
}
