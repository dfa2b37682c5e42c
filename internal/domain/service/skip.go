package service

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
)

// SkipPolicy decides whether a check should run at all for a given calendar
// date. It knows nothing about individual users; vacation exemptions are
// applied per member during reconciliation.
type SkipPolicy struct {
	dm           contract.DataManager
	skipHolidays atomic.Bool
}

func NewSkipPolicy(dm contract.DataManager, skipHolidays bool) *SkipPolicy {
	p := &SkipPolicy{dm: dm}
	p.skipHolidays.Store(skipHolidays)
	return p
}

// Evaluate returns the reason the date should be skipped, or SkipNone.
func (p *SkipPolicy) Evaluate(date time.Time) (domain.SkipReason, error) {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return domain.SkipWeekend, nil
	}

	if p.skipHolidays.Load() {
		isHoliday, err := p.dm.Holiday().Exists(date)
		if err != nil {
			return domain.SkipNone, fmt.Errorf("failed to check holiday: %w", err)
		}
		if isHoliday {
			return domain.SkipHoliday, nil
		}
	}

	return domain.SkipNone, nil
}

// ShouldSkip reports whether the date's check should be skipped entirely.
func (p *SkipPolicy) ShouldSkip(date time.Time) (bool, error) {
	reason, err := p.Evaluate(date)
	return reason != domain.SkipNone, err
}

// SetSkipHolidays toggles holiday skipping at runtime.
func (p *SkipPolicy) SetSkipHolidays(enabled bool) {
	p.skipHolidays.Store(enabled)
}

// SkipHolidays reports whether holiday skipping is enabled.
func (p *SkipPolicy) SkipHolidays() bool {
	return p.skipHolidays.Load()
}
