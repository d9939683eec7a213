// Package reload republishes the topology on a cron schedule.
package reload

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"github.com/GoSim-25-26J-441/observatory/internal/topology/service"
)

// Loader rebuilds and publishes a topology snapshot.
type Loader interface {
	Load() (*service.Snapshot, error)
}

var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ParseSchedule accepts five or six field cron expressions and descriptors
// such as "@every 30s".
func ParseSchedule(spec string) (cron.Schedule, error) {
	sched, err := scheduleParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid reload schedule %q: %w", spec, err)
	}
	return sched, nil
}

type Scheduler struct {
	cron   *cron.Cron
	loader Loader
	logger *log.Logger
}

func NewScheduler(spec string, loader Loader, logger *log.Logger) (*Scheduler, error) {
	sched, err := ParseSchedule(spec)
	if err != nil {
		return nil, err
	}

	cl := cronLogger{l: logger}
	s := &Scheduler{
		cron:   cron.New(cron.WithLogger(cl), cron.WithChain(cron.SkipIfStillRunning(cl))),
		loader: loader,
		logger: logger,
	}
	s.cron.Schedule(sched, cron.FuncJob(s.Reload))
	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("topology reload scheduler started", "entries", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop prevents further runs; the returned context is done once a running
// reload has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Reload runs one load. A failed load is logged and the published snapshot
// is left as it was.
func (s *Scheduler) Reload() {
	snap, err := s.loader.Load()
	if err != nil {
		s.logger.Error("topology reload failed, keeping previous snapshot", "err", err)
		return
	}
	s.logger.Debug("topology reloaded", "regions", snap.Topology.Len())
}

type cronLogger struct {
	l *log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error(msg, append(keysAndValues, "err", err)...)
}
