package scheduler

import (
	"context"
	"log"
	"time"
)

// Scheduler re-runs the crawl on a fixed interval (watch mode)
type Scheduler struct {
	interval time.Duration
	run      func() error
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewScheduler creates a new scheduler that invokes run every interval
func NewScheduler(interval time.Duration, run func() error) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		interval: interval,
		run:      run,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the scheduler in a goroutine
func (s *Scheduler) Start() {
	go s.loop()
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cancel()
	log.Println("Scheduler stopped")
}

// Wait blocks until the scheduler is stopped
func (s *Scheduler) Wait() {
	<-s.ctx.Done()
}

// loop is the main scheduler loop. Failed runs are logged and retried on
// the next tick rather than stopping the watch.
func (s *Scheduler) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			log.Println("Scheduled crawl starting")
			if err := s.run(); err != nil {
				log.Printf("Error: Scheduled crawl failed: %v\n", err)
			}
		}
	}
}
