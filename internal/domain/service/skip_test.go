package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
)

func TestSkipPolicy_Weekend(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	policy := NewSkipPolicy(m.mockDataManager, true)

	saturday := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

	for _, d := range []time.Time{saturday, sunday} {
		reason, err := policy.Evaluate(d)
		require.NoError(t, err)
		assert.Equal(t, domain.SkipWeekend, reason, d.Weekday())
	}
}

func TestSkipPolicy_Holiday(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	policy := NewSkipPolicy(m.mockDataManager, true)

	holiday := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) // Wednesday
	m.mockHolidayRepo.EXPECT().Exists(holiday).Return(true, nil)

	reason, err := policy.Evaluate(holiday)
	require.NoError(t, err)
	assert.Equal(t, domain.SkipHoliday, reason)
}

func TestSkipPolicy_HolidaySkipDisabled(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	policy := NewSkipPolicy(m.mockDataManager, false)

	// No holiday lookup expected when the toggle is off.
	holiday := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	reason, err := policy.Evaluate(holiday)
	require.NoError(t, err)
	assert.Equal(t, domain.SkipNone, reason)
}

func TestSkipPolicy_Toggle(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	policy := NewSkipPolicy(m.mockDataManager, false)
	assert.False(t, policy.SkipHolidays())

	policy.SetSkipHolidays(true)
	assert.True(t, policy.SkipHolidays())

	weekday := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) // Thursday
	m.mockHolidayRepo.EXPECT().Exists(weekday).Return(false, nil)

	skip, err := policy.ShouldSkip(weekday)
	require.NoError(t, err)
	assert.False(t, skip)
}
