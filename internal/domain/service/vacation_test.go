package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVacationLedger_Register_InvalidRange(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ledger := NewVacationLedger(m.mockDataManager, zap.NewNop())

	_, _, _, err := ledger.Register(context.Background(), "U001", day(2025, 1, 15), day(2025, 1, 10))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestVacationLedger_Register_NewRange(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ledger := NewVacationLedger(m.mockDataManager, zap.NewNop())

	m.mockVacationRepo.EXPECT().GetByUser("U001").Return(nil, nil)
	m.mockVacationRepo.EXPECT().Create(&entity.VacationRange{
		UserID:    "U001",
		StartDate: day(2025, 1, 10),
		EndDate:   day(2025, 1, 12),
	}).Return(nil)

	start, end, merged, err := ledger.Register(context.Background(), "U001", day(2025, 1, 10), day(2025, 1, 12))
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, day(2025, 1, 10), start)
	assert.Equal(t, day(2025, 1, 12), end)
}

func TestVacationLedger_Register_MergesOverlapping(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ledger := NewVacationLedger(m.mockDataManager, zap.NewNop())

	existing := []*entity.VacationRange{
		{ID: 7, UserID: "U001", StartDate: day(2025, 1, 10), EndDate: day(2025, 1, 12)},
	}
	m.mockVacationRepo.EXPECT().GetByUser("U001").Return(existing, nil)
	m.mockVacationRepo.EXPECT().Delete(int64(7)).Return(nil)
	m.mockVacationRepo.EXPECT().Create(&entity.VacationRange{
		UserID:    "U001",
		StartDate: day(2025, 1, 10),
		EndDate:   day(2025, 1, 15),
	}).Return(nil)

	start, end, merged, err := ledger.Register(context.Background(), "U001", day(2025, 1, 12), day(2025, 1, 15))
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, day(2025, 1, 10), start)
	assert.Equal(t, day(2025, 1, 15), end)
}

func TestVacationLedger_Register_MergesAdjacent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ledger := NewVacationLedger(m.mockDataManager, zap.NewNop())

	// Existing range ends the day before the new one starts.
	existing := []*entity.VacationRange{
		{ID: 3, UserID: "U001", StartDate: day(2025, 1, 10), EndDate: day(2025, 1, 11)},
	}
	m.mockVacationRepo.EXPECT().GetByUser("U001").Return(existing, nil)
	m.mockVacationRepo.EXPECT().Delete(int64(3)).Return(nil)
	m.mockVacationRepo.EXPECT().Create(&entity.VacationRange{
		UserID:    "U001",
		StartDate: day(2025, 1, 10),
		EndDate:   day(2025, 1, 14),
	}).Return(nil)

	_, end, merged, err := ledger.Register(context.Background(), "U001", day(2025, 1, 12), day(2025, 1, 14))
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, day(2025, 1, 14), end)
}

func TestVacationLedger_Register_DisjointStaysSeparate(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ledger := NewVacationLedger(m.mockDataManager, zap.NewNop())

	existing := []*entity.VacationRange{
		{ID: 3, UserID: "U001", StartDate: day(2025, 1, 1), EndDate: day(2025, 1, 2)},
	}
	m.mockVacationRepo.EXPECT().GetByUser("U001").Return(existing, nil)
	m.mockVacationRepo.EXPECT().Create(&entity.VacationRange{
		UserID:    "U001",
		StartDate: day(2025, 1, 10),
		EndDate:   day(2025, 1, 12),
	}).Return(nil)

	_, _, merged, err := ledger.Register(context.Background(), "U001", day(2025, 1, 10), day(2025, 1, 12))
	require.NoError(t, err)
	assert.False(t, merged)
}

func TestVacationLedger_CancelAll(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ledger := NewVacationLedger(m.mockDataManager, zap.NewNop())

	m.mockVacationRepo.EXPECT().DeleteByUser("U001").Return(int64(2), nil)

	count, err := ledger.CancelAll(context.Background(), "U001")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestVacationLedger_IsOnVacation(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ledger := NewVacationLedger(m.mockDataManager, zap.NewNop())

	v := &entity.VacationRange{UserID: "U001", StartDate: day(2025, 1, 10), EndDate: day(2025, 1, 12)}
	m.mockVacationRepo.EXPECT().GetByUserAndDate("U001", day(2025, 1, 11)).Return(v, nil)
	m.mockVacationRepo.EXPECT().GetByUserAndDate("U001", day(2025, 1, 13)).Return(nil, nil)

	on, err := ledger.IsOnVacation(context.Background(), "U001", day(2025, 1, 11))
	require.NoError(t, err)
	assert.True(t, on)

	on, err = ledger.IsOnVacation(context.Background(), "U001", day(2025, 1, 13))
	require.NoError(t, err)
	assert.False(t, on)
}
