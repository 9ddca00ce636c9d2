package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"studiobook/pkg/model"
)

type mockReapService struct {
	BookingService
	reaps atomic.Int64
}

func (m *mockReapService) ReapExpired(ctx context.Context) (int64, error) {
	m.reaps.Add(1)
	return 1, nil
}

func (m *mockReapService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return nil, nil
}

func TestReaper_SweepsOnInterval(t *testing.T) {
	cfg := testConfig()
	svc := &mockReapService{}

	reaper := NewReaper(svc, cfg)
	go reaper.Start()

	deadline := time.After(2 * time.Second)
	for svc.reaps.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 sweeps, got %d", svc.reaps.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	reaper.Stop()
	after := svc.reaps.Load()
	time.Sleep(50 * time.Millisecond)
	if svc.reaps.Load() != after {
		t.Error("reaper kept sweeping after Stop")
	}
}

func TestReaper_StopIsIdempotent(t *testing.T) {
	cfg := testConfig()
	reaper := NewReaper(&mockReapService{}, cfg)
	go reaper.Start()

	reaper.Stop()
	reaper.Stop()
}
