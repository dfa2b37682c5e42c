package database

import (
	"testing"
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(userID, date, clock string) *entity.VerificationRecord {
	return &entity.VerificationRecord{
		ID:               uuid.NewString(),
		UserID:           userID,
		Username:         "user-" + userID,
		MessageContent:   "proof",
		ImageURLs:        []string{"https://files.example.com/" + userID + ".jpg"},
		VerificationDate: date,
		VerificationTime: clock,
	}
}

func TestVerificationRepo_CreateAndGetByDateRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newVerificationRepo(db.conn)

	require.NoError(t, repo.Create(newTestRecord("U001", "2025-01-10", "14:00:00")))
	require.NoError(t, repo.Create(newTestRecord("U002", "2025-01-10", "15:30:00")))
	require.NoError(t, repo.Create(newTestRecord("U003", "2025-01-12", "09:00:00")))

	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	records, err := repo.GetByDateRange(start, end)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "U001", records[0].UserID)
	assert.Equal(t, "U002", records[1].UserID)
	assert.Equal(t, []string{"https://files.example.com/U001.jpg"}, records[0].ImageURLs)
}

func TestVerificationRepo_GetByUserAndDate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newVerificationRepo(db.conn)

	require.NoError(t, repo.Create(newTestRecord("U001", "2025-01-10", "14:00:00")))

	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	record, err := repo.GetByUserAndDate("U001", date)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "2025-01-10", record.VerificationDate)
	assert.Equal(t, "14:00:00", record.VerificationTime)

	missing, err := repo.GetByUserAndDate("U999", date)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
