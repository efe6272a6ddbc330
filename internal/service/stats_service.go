package service

import (
	"context"
	"log"
	"time"

	"hospital-registry-service/internal/metrics"
	"hospital-registry-service/internal/repository"
)

const defaultStatsInterval = 15 * time.Second

// StatsService is the background worker that publishes registry summary
// gauges for the metrics endpoint.
type StatsService struct {
	hospitalRepo *repository.HospitalRepository
	interval     time.Duration
}

func NewStatsService(hospitalRepo *repository.HospitalRepository, interval time.Duration) *StatsService {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return &StatsService{
		hospitalRepo: hospitalRepo,
		interval:     interval,
	}
}

// Start begins the background worker that refreshes registry gauges.
// It publishes once immediately so the gauges are live before the first
// tick, then refreshes on the interval until the context is cancelled.
func (w *StatsService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Stats worker started - publishing every %s", w.interval)

	w.publish()

	for {
		select {
		case <-ctx.Done():
			log.Println("Stats worker stopped")
			return
		case <-ticker.C:
			w.publish()
		}
	}
}

// publish snapshots the registry and updates the gauges
func (w *StatsService) publish() {
	metrics.SetRegistryStats(w.hospitalRepo.Stats())
}
