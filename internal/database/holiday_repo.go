package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

type holidayRepo struct {
	db dbConn
}

func newHolidayRepo(db dbConn) contract.HolidayRepo {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) Upsert(holiday *entity.Holiday) error {
	query := `
		INSERT INTO holidays (date, name) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET name = excluded.name
	`

	_, err := r.db.Exec(query, formatDate(holiday.Date), holiday.Name)
	if err != nil {
		return fmt.Errorf("failed to upsert holiday: %w", err)
	}

	return nil
}

func (r *holidayRepo) Delete(date time.Time) error {
	query := `DELETE FROM holidays WHERE date = ?`

	_, err := r.db.Exec(query, formatDate(date))
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	return nil
}

func (r *holidayRepo) Exists(date time.Time) (bool, error) {
	query := `SELECT 1 FROM holidays WHERE date = ?`

	var one int
	err := r.db.QueryRow(query, formatDate(date)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return true, nil
}

func (r *holidayRepo) List() ([]*entity.Holiday, error) {
	query := `SELECT date, name, created_at FROM holidays ORDER BY date ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*entity.Holiday
	for rows.Next() {
		holiday := &entity.Holiday{}
		var date string
		if err := rows.Scan(&date, &holiday.Name, &holiday.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		if holiday.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("failed to parse holiday date: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	return holidays, nil
}
