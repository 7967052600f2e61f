// Package agent is the in-process embodiment of the external polling
// trigger: it periodically evaluates the coordinator's due-check and invokes
// execute when work is due. The service stays purely reactive; deployments
// that poll from outside simply leave the agent disabled and drive the
// automation HTTP endpoints instead.
package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"dreamfund/internal/core/port"
)

// Poller owns the gocron scheduler running the due-check/execute job.
type Poller struct {
	scheduler   gocron.Scheduler
	coordinator port.CoordinatorUseCase
	every       time.Duration
	logger      *slog.Logger
}

// NewPoller creates a poller invoking the coordinator every interval. The
// polling cadence must be at least as fine-grained as the coordinator's
// configured interval, otherwise settlement is delayed indefinitely.
func NewPoller(coordinator port.CoordinatorUseCase, every time.Duration, logger *slog.Logger) (*Poller, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Poller{
		scheduler:   s,
		coordinator: coordinator,
		every:       every,
		logger:      logger,
	}, nil
}

// Start registers the polling job and starts the scheduler. Singleton mode
// keeps a slow execute from overlapping the next tick.
func (p *Poller) Start() error {
	_, err := p.scheduler.NewJob(
		gocron.DurationJob(p.every),
		gocron.NewTask(p.poll),
		gocron.WithName("settlement_poller"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}
	p.scheduler.Start()
	p.logger.Info("settlement poller started", slog.Duration("every", p.every))
	return nil
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (p *Poller) Stop() {
	if err := p.scheduler.Shutdown(); err != nil {
		p.logger.Error("poller shutdown", slog.Any("error", err))
	}
}

func (p *Poller) poll() {
	ctx := context.Background()

	due, err := p.coordinator.DueCheck(ctx)
	if err != nil {
		p.logger.Error("due-check failed", slog.Any("error", err))
		return
	}
	if !due {
		return
	}

	report, err := p.coordinator.Execute(ctx)
	if err != nil {
		// UpkeepNotNeeded is routine: the state changed between the check
		// and the execute, or the distribution service is busy calculating.
		if errors.Is(err, port.ErrUpkeepNotNeeded) {
			p.logger.Info("upkeep skipped", slog.Any("reason", err))
			return
		}
		p.logger.Error("execute failed", slog.Any("error", err))
		return
	}
	p.logger.Info("upkeep performed",
		slog.Int("expired", len(report.Expired)),
		slog.Int("handoffs", report.Handoffs),
		slog.Int64("handed_off", report.HandedOff),
	)
}
