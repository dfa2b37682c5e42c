package contract

import (
	"context"
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Verification() VerificationRepo
	Vacation() VacationRepo
	Holiday() HolidayRepo
}

// VerificationRepo defines the contract for the verification record store.
// Records are append-only; there is no update or delete.
type VerificationRepo interface {
	Create(record *entity.VerificationRecord) error
	GetByDateRange(startDate, endDate time.Time) ([]*entity.VerificationRecord, error)
	GetByUserAndDate(userID string, date time.Time) (*entity.VerificationRecord, error)
}

// VacationRepo defines the contract for vacation range storage
type VacationRepo interface {
	Create(vacation *entity.VacationRange) error
	GetByUser(userID string) ([]*entity.VacationRange, error)
	GetByUserAndDate(userID string, date time.Time) (*entity.VacationRange, error)
	Delete(id int64) error
	DeleteByUser(userID string) (int64, error)
}

// HolidayRepo defines the contract for holiday reference data
type HolidayRepo interface {
	Upsert(holiday *entity.Holiday) error
	Delete(date time.Time) error
	Exists(date time.Time) (bool, error)
	List() ([]*entity.Holiday, error)
}
