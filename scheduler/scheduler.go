// Package scheduler triggers refresh cycles on start, on request and
// periodically.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/theMomax/weatherboard/utils/metadata"
)

// Interval is the refresh cadence.
const Interval = 15 * time.Minute

// Loader runs one refresh cycle.
type Loader interface {
	Load(ctx context.Context, trigger metadata.Trigger) *metadata.Cycle
}

// Scheduler starts cycles without coordinating them: a trigger firing while
// another cycle is running starts a second, concurrent cycle.
type Scheduler struct {
	loader   Loader
	interval time.Duration
	cron     *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	log *logrus.Entry
}

// New returns a stopped Scheduler firing every interval once started.
func New(loader Loader, interval time.Duration, log *logrus.Entry) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		loader:   loader,
		interval: interval,
		cron:     cron.New(cron.WithLogger(cronLogger{log})),
		ctx:      ctx,
		cancel:   cancel,
		log:      log,
	}
}

// Start runs the initial cycle and starts the timer.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		s.Trigger(metadata.Periodic)
	}); err != nil {
		return fmt.Errorf("could not schedule refresh: %w", err)
	}
	s.Trigger(metadata.Initial)
	s.cron.Start()
	s.log.WithField("interval", s.interval).Info("scheduler started")
	return nil
}

// Trigger starts a cycle in the background.
func (s *Scheduler) Trigger(trigger metadata.Trigger) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loader.Load(s.ctx, trigger)
	}()
}

// Stop stops the timer, cancels running cycles and waits for them to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.cancel()
	s.wg.Wait()
	s.log.Info("scheduler stopped")
}

// cronLogger adapts logrus to cron.Logger.
type cronLogger struct {
	log *logrus.Entry
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).WithError(err).Error(msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		f[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return f
}
