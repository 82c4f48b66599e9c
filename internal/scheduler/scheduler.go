package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Pass is one evaluation sweep over a record collection.
type Pass interface {
	CheckAndSend(ctx context.Context) error
}

// Scheduler drives a Pass once per interval until the context is cancelled.
// A failing tick is logged and swallowed; the loop itself never terminates
// on an error.
type Scheduler struct {
	name     string
	pass     Pass
	interval time.Duration
	logger   logger.Logger
}

func New(name string, pass Pass, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		name:     name,
		pass:     pass,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.String("name", s.name),
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped", logger.String("name", s.name))
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.pass.CheckAndSend(ctx); err != nil {
		s.logger.Error("scheduler pass failed",
			logger.String("name", s.name),
			logger.String("error", err.Error()),
		)
	}
}
