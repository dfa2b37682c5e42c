package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

type vacationRepo struct {
	db dbConn
}

func newVacationRepo(db dbConn) contract.VacationRepo {
	return &vacationRepo{db: db}
}

func (r *vacationRepo) Create(vacation *entity.VacationRange) error {
	query := `
		INSERT INTO vacations (user_id, start_date, end_date)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		vacation.UserID,
		formatDate(vacation.StartDate),
		formatDate(vacation.EndDate),
	)
	if err != nil {
		return fmt.Errorf("failed to create vacation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	vacation.ID = id
	return nil
}

func (r *vacationRepo) GetByUser(userID string) ([]*entity.VacationRange, error) {
	query := `
		SELECT id, user_id, start_date, end_date, created_at
		FROM vacations
		WHERE user_id = ?
		ORDER BY start_date ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vacations: %w", err)
	}
	defer rows.Close()

	var vacations []*entity.VacationRange
	for rows.Next() {
		vacation, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, vacation)
	}

	return vacations, nil
}

func (r *vacationRepo) GetByUserAndDate(userID string, date time.Time) (*entity.VacationRange, error) {
	query := `
		SELECT id, user_id, start_date, end_date, created_at
		FROM vacations
		WHERE user_id = ? AND start_date <= ? AND end_date >= ?
		LIMIT 1
	`

	vacation := &entity.VacationRange{}
	var startDate, endDate string
	err := r.db.QueryRow(query, userID, formatDate(date), formatDate(date)).Scan(
		&vacation.ID,
		&vacation.UserID,
		&startDate,
		&endDate,
		&vacation.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation: %w", err)
	}

	if vacation.StartDate, err = parseDate(startDate); err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	if vacation.EndDate, err = parseDate(endDate); err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	return vacation, nil
}

func (r *vacationRepo) Delete(id int64) error {
	query := `DELETE FROM vacations WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vacation: %w", err)
	}

	return nil
}

func (r *vacationRepo) DeleteByUser(userID string) (int64, error) {
	query := `DELETE FROM vacations WHERE user_id = ?`

	result, err := r.db.Exec(query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete vacations: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return count, nil
}

func scanVacation(rows *sql.Rows) (*entity.VacationRange, error) {
	vacation := &entity.VacationRange{}
	var startDate, endDate string
	err := rows.Scan(
		&vacation.ID,
		&vacation.UserID,
		&startDate,
		&endDate,
		&vacation.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan vacation: %w", err)
	}

	if vacation.StartDate, err = parseDate(startDate); err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	if vacation.EndDate, err = parseDate(endDate); err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	return vacation, nil
}
