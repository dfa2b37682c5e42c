package service

import (
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

// WindowConfig holds the check-in window boundaries. An end hour before 12
// is treated as early morning, meaning the window rolls past local midnight
// (e.g. 12:00 -> next-day 03:00).
type WindowConfig struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	EndSecond   int
	Location    *time.Location
}

// WindowCalculator computes check-in windows. Pure given current time and
// config; no I/O.
type WindowCalculator struct {
	cfg WindowConfig
}

func NewWindowCalculator(cfg WindowConfig) *WindowCalculator {
	return &WindowCalculator{cfg: cfg}
}

// WindowForToday returns the window the instant now belongs to. When the
// current local hour is before the start hour, "today" began on the previous
// calendar day, so a 02:00 check-in still counts for the prior day's window.
func (c *WindowCalculator) WindowForToday(now time.Time) entity.CheckWindow {
	local := now.In(c.cfg.Location)

	base := entity.DateOnly(local)
	if local.Hour() < c.cfg.StartHour {
		base = base.AddDate(0, 0, -1)
	}

	return c.windowFor(base)
}

// WindowForDate returns the window for the given calendar date.
func (c *WindowCalculator) WindowForDate(date time.Time) entity.CheckWindow {
	base := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.cfg.Location)
	return c.windowFor(base)
}

func (c *WindowCalculator) windowFor(base time.Time) entity.CheckWindow {
	start := time.Date(base.Year(), base.Month(), base.Day(),
		c.cfg.StartHour, c.cfg.StartMinute, 0, 0, c.cfg.Location)

	endBase := base
	if c.cfg.EndHour < 12 {
		endBase = base.AddDate(0, 0, 1)
	}
	end := time.Date(endBase.Year(), endBase.Month(), endBase.Day(),
		c.cfg.EndHour, c.cfg.EndMinute, c.cfg.EndSecond, 0, c.cfg.Location)

	return entity.CheckWindow{Start: start, End: end}
}

// Remaining returns how long is left until the current window closes.
func (c *WindowCalculator) Remaining(now time.Time) time.Duration {
	w := c.WindowForToday(now)
	return w.End.Sub(now.In(c.cfg.Location))
}
