package cronjob

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/zerobuild-ai/zerobuild-backend/internal/gateway"
)

// MetricsSource exposes gateway call counters.
type MetricsSource interface {
	Metrics() *gateway.Metrics
}

type Scheduler struct {
	c      *cron.Cron
	source MetricsSource
}

func NewScheduler(source MetricsSource) *Scheduler {
	return &Scheduler{
		c:      cron.New(cron.WithSeconds()),
		source: source,
	}
}

// Start registers the metrics report on spec and starts the cron runner.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.c.AddFunc(spec, s.reportMetrics); err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return err
	}

	log.Printf("Cron scheduler started (gateway metrics on %q)", spec)
	s.c.Start()
	return nil
}

// Stop halts the scheduler and returns a context done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.c.Stop()
}

func (s *Scheduler) reportMetrics() {
	snap := s.source.Metrics().Snapshot()
	log.Printf(
		"[info] request_id=cron operation=gateway_metrics calls=%d errors=%d error_rate=%.1f%% avg_latency_ms=%.1f",
		snap.Calls,
		snap.Errors,
		snap.ErrorRate(),
		snap.AverageLatency(),
	)
}
