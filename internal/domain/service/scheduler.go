package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
)

// TriggerTimes holds the local wall-clock firing times for both triggers.
type TriggerTimes struct {
	DailyHour      int
	DailyMinute    int
	PreviousHour   int
	PreviousMinute int
	Location       *time.Location
}

// Scheduler orchestrates the two recurring checks. Each trigger holds a run
// guard so a manual invocation overlapping an automatic firing becomes a
// logged no-op instead of a duplicate run.
type Scheduler struct {
	skip       *SkipPolicy
	windows    *WindowCalculator
	reconciler *Reconciler
	dispatcher *Dispatcher
	channelID  string
	times      TriggerTimes
	clock      func() time.Time
	log        *zap.Logger

	dailyRunning    atomic.Bool
	previousRunning atomic.Bool
	stopChan        chan struct{}
	running         bool
}

func NewScheduler(skip *SkipPolicy, windows *WindowCalculator, reconciler *Reconciler, dispatcher *Dispatcher, channelID string, times TriggerTimes, log *zap.Logger) *Scheduler {
	return &Scheduler{
		skip:       skip,
		windows:    windows,
		reconciler: reconciler,
		dispatcher: dispatcher,
		channelID:  channelID,
		times:      times,
		clock:      time.Now,
		log:        log,
		stopChan:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info("scheduler starting")
	go s.loop(domain.TriggerDaily)
	go s.loop(domain.TriggerPreviousDay)
}

func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *Scheduler) loop(trigger domain.Trigger) {
	for {
		next := s.nextFire(trigger, s.clock())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			s.runTrigger(ctx, trigger)
			cancel()
			// Step past the firing instant so the same minute is not
			// re-processed.
			time.Sleep(time.Minute)

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

func (s *Scheduler) runTrigger(ctx context.Context, trigger domain.Trigger) {
	var err error
	if trigger == domain.TriggerDaily {
		err = s.RunDailyCheck(ctx)
	} else {
		err = s.RunPreviousDayCheck(ctx)
	}
	if err != nil {
		s.log.Error("check run failed", zap.String("trigger", string(trigger)), zap.Error(err))
	}
}

// nextFire returns the next firing instant for the trigger after now.
func (s *Scheduler) nextFire(trigger domain.Trigger, now time.Time) time.Time {
	hour, minute := s.times.DailyHour, s.times.DailyMinute
	if trigger == domain.TriggerPreviousDay {
		hour, minute = s.times.PreviousHour, s.times.PreviousMinute
	}

	local := now.In(s.times.Location)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, s.times.Location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// NextRuns returns the next firing instants of the daily and previous-day
// triggers.
func (s *Scheduler) NextRuns() (daily, previous time.Time) {
	now := s.clock()
	return s.nextFire(domain.TriggerDaily, now), s.nextFire(domain.TriggerPreviousDay, now)
}

// RunDailyCheck executes the same-day check. Safe to call manually; an
// overlapping invocation is a logged no-op.
func (s *Scheduler) RunDailyCheck(ctx context.Context) error {
	if !s.dailyRunning.CompareAndSwap(false, true) {
		s.log.Warn("daily check already running, skipping")
		return nil
	}
	defer s.dailyRunning.Store(false)

	now := s.clock().In(s.times.Location)
	log := s.log.With(
		zap.String("trigger", string(domain.TriggerDaily)),
		zap.String("run_id", uuid.NewString()))

	reason, err := s.skip.Evaluate(now)
	if err != nil {
		return err
	}
	if reason != domain.SkipNone {
		log.Info("check skipped", zap.String("reason", reason.String()))
		return nil
	}

	window := s.windows.WindowForToday(now)
	log.Info("daily check starting",
		zap.Time("window_start", window.Start),
		zap.Time("window_end", window.End))

	_, unverified, err := s.reconciler.Reconcile(ctx, s.channelID, window)
	if err != nil {
		return err
	}

	return s.dispatcher.Announce(ctx, s.channelID, unverified, DailyUnverifiedTemplate, domain.TriggerDaily)
}

// RunPreviousDayCheck executes the previous-day check. On Mondays the target
// is the preceding Friday; weekends are never individually chased.
func (s *Scheduler) RunPreviousDayCheck(ctx context.Context) error {
	if !s.previousRunning.CompareAndSwap(false, true) {
		s.log.Warn("previous-day check already running, skipping")
		return nil
	}
	defer s.previousRunning.Store(false)

	now := s.clock().In(s.times.Location)
	log := s.log.With(
		zap.String("trigger", string(domain.TriggerPreviousDay)),
		zap.String("run_id", uuid.NewString()))

	reason, err := s.skip.Evaluate(now)
	if err != nil {
		return err
	}
	if reason != domain.SkipNone {
		log.Info("check skipped", zap.String("reason", reason.String()))
		return nil
	}

	target := now.AddDate(0, 0, -1)
	template := YesterdayUnverifiedTemplate
	if now.Weekday() == time.Monday {
		target = now.AddDate(0, 0, -3)
		template = FridayUnverifiedTemplate
		log.Info("monday run, targeting last friday")
	}

	reason, err = s.skip.Evaluate(target)
	if err != nil {
		return err
	}
	if reason != domain.SkipNone {
		log.Info("check skipped, target date not a check day",
			zap.String("target", target.Format(domain.DateLayout)),
			zap.String("reason", reason.String()))
		return nil
	}

	window := s.windows.WindowForDate(target)
	log.Info("previous-day check starting",
		zap.String("target", target.Format(domain.DateLayout)),
		zap.Time("window_start", window.Start),
		zap.Time("window_end", window.End))

	_, unverified, err := s.reconciler.Reconcile(ctx, s.channelID, window)
	if err != nil {
		return err
	}

	return s.dispatcher.Announce(ctx, s.channelID, unverified, template, domain.TriggerPreviousDay)
}
