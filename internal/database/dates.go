package database

import (
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
)

// Dates are stored as TEXT in YYYY-MM-DD so range queries can use plain
// lexicographic comparison.

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}
