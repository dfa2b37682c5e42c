package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

func newTestReconciler(m allMocks) *Reconciler {
	ledger := NewVacationLedger(m.mockDataManager, zap.NewNop())
	return NewReconciler(m.mockDataManager, m.mockChatClient, ledger, ReconcilerConfig{
		Keywords:          []string{"proof"},
		MaxAttachmentSize: 9 * 1024 * 1024,
		HistoryPageLimit:  1000,
	}, zap.NewNop())
}

func testWindow() entity.CheckWindow {
	return entity.CheckWindow{
		Start: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 11, 3, 0, 0, 0, time.UTC),
	}
}

func TestReconciler_Reconcile(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	r := newTestReconciler(m)
	window := testWindow()
	ctx := context.Background()

	// U001 verified via the store, U002 via history, U003 on vacation,
	// U004 unverified, bots ignored.
	records := []*entity.VerificationRecord{
		{UserID: "U001", VerificationDate: "2025-01-10"},
	}
	m.mockVerificationRepo.EXPECT().
		GetByDateRange(day(2025, 1, 10), day(2025, 1, 11)).
		Return(records, nil)

	history := []entity.Message{
		{
			AuthorID: "U002",
			Text:     "proof of today's workout",
			Attachments: []entity.Attachment{
				{ContentType: "image/jpeg", Size: 1024 * 1024, URL: "https://files.example.com/a.jpg"},
			},
		},
		{
			AuthorID: "U004",
			Text:     "just chatting, no proof here",
		},
		{
			AuthorID: "U005",
			Text:     "proof",
			Attachments: []entity.Attachment{
				// Not an image, so this does not verify U005.
				{ContentType: "application/pdf", Size: 1024},
			},
		},
	}
	m.mockChatClient.EXPECT().
		FetchHistory(ctx, "C001", window.Start, window.End, 1000).
		Return(history, nil)

	members := []entity.Member{
		{ID: "U001", DisplayName: "alice"},
		{ID: "U002", DisplayName: "bob"},
		{ID: "U003", DisplayName: "carol"},
		{ID: "U004", DisplayName: "dave"},
		{ID: "U005", DisplayName: "erin"},
		{ID: "B001", DisplayName: "bot", IsBot: true},
	}
	m.mockChatClient.EXPECT().ListMembers(ctx, "C001").Return(members, nil)

	// Vacation checks run against the window end's calendar date.
	vacationDate := day(2025, 1, 11)
	m.mockVacationRepo.EXPECT().GetByUserAndDate("U003", vacationDate).
		Return(&entity.VacationRange{UserID: "U003"}, nil)
	m.mockVacationRepo.EXPECT().GetByUserAndDate("U004", vacationDate).Return(nil, nil)
	m.mockVacationRepo.EXPECT().GetByUserAndDate("U005", vacationDate).Return(nil, nil)

	verified, unverified, err := r.Reconcile(ctx, "C001", window)
	require.NoError(t, err)

	assert.Contains(t, verified, "U001")
	assert.Contains(t, verified, "U002")
	assert.NotContains(t, verified, "U005")

	ids := make([]string, 0, len(unverified))
	for _, member := range unverified {
		ids = append(ids, member.ID)
	}
	assert.Equal(t, []string{"U004", "U005"}, ids)
}

func TestReconciler_Reconcile_Idempotent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	r := newTestReconciler(m)
	window := testWindow()
	ctx := context.Background()

	members := []entity.Member{
		{ID: "U001", DisplayName: "alice"},
		{ID: "U002", DisplayName: "bob"},
	}

	m.mockVerificationRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]*entity.VerificationRecord{{UserID: "U001"}}, nil).
		Times(2)
	m.mockChatClient.EXPECT().
		FetchHistory(ctx, "C001", window.Start, window.End, 1000).
		Return(nil, nil).
		Times(2)
	m.mockChatClient.EXPECT().ListMembers(ctx, "C001").Return(members, nil).Times(2)
	m.mockVacationRepo.EXPECT().GetByUserAndDate("U002", gomock.Any()).Return(nil, nil).Times(2)

	verified1, unverified1, err := r.Reconcile(ctx, "C001", window)
	require.NoError(t, err)
	verified2, unverified2, err := r.Reconcile(ctx, "C001", window)
	require.NoError(t, err)

	assert.Equal(t, verified1, verified2)
	assert.Equal(t, unverified1, unverified2)
}

func TestReconciler_Reconcile_PermissionDenied(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	r := newTestReconciler(m)
	window := testWindow()
	ctx := context.Background()

	m.mockVerificationRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.mockChatClient.EXPECT().
		FetchHistory(ctx, "C001", window.Start, window.End, 1000).
		Return(nil, domain.ErrPermissionDenied)

	_, _, err := r.Reconcile(ctx, "C001", window)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
