package database

import (
	"context"
	"fmt"

	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	verificationRepo contract.VerificationRepo
	vacationRepo     contract.VacationRepo
	holidayRepo      contract.HolidayRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.verificationRepo = newVerificationRepo(db.conn)
	i.vacationRepo = newVacationRepo(db.conn)
	i.holidayRepo = newHolidayRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		verificationRepo: newVerificationRepo(db),
		vacationRepo:     newVacationRepo(db),
		holidayRepo:      newHolidayRepo(db),
	}
}

func (i *instance) Verification() contract.VerificationRepo {
	return i.verificationRepo
}

func (i *instance) Vacation() contract.VacationRepo {
	return i.vacationRepo
}

func (i *instance) Holiday() contract.HolidayRepo {
	return i.holidayRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
