package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

type verificationRepo struct {
	db dbConn
}

func newVerificationRepo(db dbConn) contract.VerificationRepo {
	return &verificationRepo{db: db}
}

func (r *verificationRepo) Create(record *entity.VerificationRecord) error {
	query := `
		INSERT INTO verifications (id, user_id, username, message_content, image_urls, verification_date, verification_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	imageURLsJSON, err := json.Marshal(record.ImageURLs)
	if err != nil {
		return fmt.Errorf("failed to marshal image urls: %w", err)
	}

	_, err = r.db.Exec(query,
		record.ID,
		record.UserID,
		record.Username,
		record.MessageContent,
		string(imageURLsJSON),
		record.VerificationDate,
		record.VerificationTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create verification: %w", err)
	}

	return nil
}

func (r *verificationRepo) GetByDateRange(startDate, endDate time.Time) ([]*entity.VerificationRecord, error) {
	query := `
		SELECT id, user_id, username, message_content, image_urls, verification_date, verification_time, created_at
		FROM verifications
		WHERE verification_date >= ? AND verification_date <= ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query, formatDate(startDate), formatDate(endDate))
	if err != nil {
		return nil, fmt.Errorf("failed to get verifications: %w", err)
	}
	defer rows.Close()

	var records []*entity.VerificationRecord
	for rows.Next() {
		record, err := scanVerification(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *verificationRepo) GetByUserAndDate(userID string, date time.Time) (*entity.VerificationRecord, error) {
	query := `
		SELECT id, user_id, username, message_content, image_urls, verification_date, verification_time, created_at
		FROM verifications
		WHERE user_id = ? AND verification_date = ?
		ORDER BY created_at ASC
		LIMIT 1
	`

	record := &entity.VerificationRecord{}
	var imageURLsJSON string
	err := r.db.QueryRow(query, userID, formatDate(date)).Scan(
		&record.ID,
		&record.UserID,
		&record.Username,
		&record.MessageContent,
		&imageURLsJSON,
		&record.VerificationDate,
		&record.VerificationTime,
		&record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}

	if err := json.Unmarshal([]byte(imageURLsJSON), &record.ImageURLs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal image urls: %w", err)
	}

	return record, nil
}

func scanVerification(rows *sql.Rows) (*entity.VerificationRecord, error) {
	record := &entity.VerificationRecord{}
	var imageURLsJSON string
	err := rows.Scan(
		&record.ID,
		&record.UserID,
		&record.Username,
		&record.MessageContent,
		&imageURLsJSON,
		&record.VerificationDate,
		&record.VerificationTime,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan verification: %w", err)
	}

	if err := json.Unmarshal([]byte(imageURLsJSON), &record.ImageURLs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal image urls: %w", err)
	}

	return record, nil
}
