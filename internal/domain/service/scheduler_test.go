package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

func newTestScheduler(m allMocks, now time.Time) *Scheduler {
	skip := NewSkipPolicy(m.mockDataManager, true)
	windows := NewWindowCalculator(WindowConfig{StartHour: 12, EndHour: 3, Location: time.UTC})
	reconciler := newTestReconciler(m)
	dispatcher := newTestDispatcher(m, DispatcherConfig{MaxMessageLength: 1900})

	s := NewScheduler(skip, windows, reconciler, dispatcher, "C001", TriggerTimes{
		DailyHour: 22, DailyMinute: 0,
		PreviousHour: 9, PreviousMinute: 0,
		Location: time.UTC,
	}, zap.NewNop())
	s.clock = func() time.Time { return now }
	return s
}

func TestScheduler_RunDailyCheck_Weekend(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	saturday := time.Date(2025, 1, 11, 22, 0, 0, 0, time.UTC)
	s := newTestScheduler(m, saturday)

	// Weekend: no reconciliation, no messages.
	err := s.RunDailyCheck(context.Background())
	require.NoError(t, err)
}

func TestScheduler_RunDailyCheck_Holiday(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	newYears := time.Date(2025, 1, 1, 22, 0, 0, 0, time.UTC) // Wednesday
	s := newTestScheduler(m, newYears)

	m.mockHolidayRepo.EXPECT().Exists(newYears).Return(true, nil)

	err := s.RunDailyCheck(context.Background())
	require.NoError(t, err)
}

func TestScheduler_RunDailyCheck_AnnouncesUnverified(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 1, 10, 22, 0, 0, 0, time.UTC) // Friday
	s := newTestScheduler(m, now)
	ctx := context.Background()

	m.mockHolidayRepo.EXPECT().Exists(now).Return(false, nil)

	// Window for Friday 22:00 with a 12:00 start and 03:00 rollover end.
	winStart := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	winEnd := time.Date(2025, 1, 11, 3, 0, 0, 0, time.UTC)

	m.mockVerificationRepo.EXPECT().
		GetByDateRange(day(2025, 1, 10), day(2025, 1, 11)).
		Return(nil, nil)
	m.mockChatClient.EXPECT().
		FetchHistory(ctx, "C001", winStart, winEnd, 1000).
		Return(nil, nil)
	m.mockChatClient.EXPECT().ListMembers(ctx, "C001").
		Return([]entity.Member{{ID: "U001", DisplayName: "alice"}}, nil)
	m.mockVacationRepo.EXPECT().GetByUserAndDate("U001", day(2025, 1, 11)).Return(nil, nil)

	var sent string
	m.mockChatClient.EXPECT().PostMessage(ctx, "C001", gomock.Any()).DoAndReturn(
		func(ctx context.Context, channelID, text string) (string, error) {
			sent = text
			return "1", nil
		})
	m.mockWebhookSender.EXPECT().Enabled().Return(false)

	err := s.RunDailyCheck(ctx)
	require.NoError(t, err)
	assert.Contains(t, sent, "<@U001>")
	assert.Contains(t, sent, "not checked in yet today")
}

func TestScheduler_RunPreviousDayCheck_MondayTargetsFriday(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	monday := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(m, monday)
	ctx := context.Background()

	friday := monday.AddDate(0, 0, -3)
	m.mockHolidayRepo.EXPECT().Exists(monday).Return(false, nil)
	m.mockHolidayRepo.EXPECT().Exists(friday).Return(false, nil)

	winStart := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	winEnd := time.Date(2025, 1, 11, 3, 0, 0, 0, time.UTC)

	m.mockVerificationRepo.EXPECT().
		GetByDateRange(day(2025, 1, 10), day(2025, 1, 11)).
		Return(nil, nil)
	m.mockChatClient.EXPECT().
		FetchHistory(ctx, "C001", winStart, winEnd, 1000).
		Return(nil, nil)
	m.mockChatClient.EXPECT().ListMembers(ctx, "C001").
		Return([]entity.Member{{ID: "U001", DisplayName: "alice"}}, nil)
	m.mockVacationRepo.EXPECT().GetByUserAndDate("U001", day(2025, 1, 11)).Return(nil, nil)

	var sent string
	m.mockChatClient.EXPECT().PostMessage(ctx, "C001", gomock.Any()).DoAndReturn(
		func(ctx context.Context, channelID, text string) (string, error) {
			sent = text
			return "1", nil
		})
	m.mockWebhookSender.EXPECT().Enabled().Return(false)

	err := s.RunPreviousDayCheck(ctx)
	require.NoError(t, err)
	assert.Contains(t, sent, "last Friday")
}

func TestScheduler_RunPreviousDayCheck_TargetHolidaySkips(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	thursday := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(m, thursday)

	wednesday := thursday.AddDate(0, 0, -1)
	m.mockHolidayRepo.EXPECT().Exists(thursday).Return(false, nil)
	m.mockHolidayRepo.EXPECT().Exists(wednesday).Return(true, nil)

	err := s.RunPreviousDayCheck(context.Background())
	require.NoError(t, err)
}

func TestScheduler_RunDailyCheck_GuardBlocksOverlap(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 1, 10, 22, 0, 0, 0, time.UTC)
	s := newTestScheduler(m, now)

	s.dailyRunning.Store(true)

	// Guard held: the run is a no-op, nothing touches the mocks.
	err := s.RunDailyCheck(context.Background())
	require.NoError(t, err)
}

func TestScheduler_NextRuns(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)
	s := newTestScheduler(m, now)

	daily, previous := s.NextRuns()
	assert.Equal(t, time.Date(2025, 1, 10, 22, 0, 0, 0, time.UTC), daily)
	assert.Equal(t, time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC), previous)
}

func TestScheduler_NextRuns_PastTodayFiring(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 1, 10, 23, 30, 0, 0, time.UTC)
	s := newTestScheduler(m, now)

	daily, previous := s.NextRuns()
	assert.Equal(t, time.Date(2025, 1, 11, 22, 0, 0, 0, time.UTC), daily)
	assert.Equal(t, time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC), previous)
}
