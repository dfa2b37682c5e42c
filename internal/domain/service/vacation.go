package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

// VacationLedger stores per-user vacation date ranges. A newly registered
// range that overlaps or touches an existing one is collapsed into a single
// merged range, so a user ends up with at most one window once ranges meet.
type VacationLedger struct {
	dm  contract.DataManager
	log *zap.Logger

	// userLocks serializes registrations per user so merge-on-register is
	// race-free even across concurrent commands.
	userLocks sync.Map // user_id -> *sync.Mutex
}

func NewVacationLedger(dm contract.DataManager, log *zap.Logger) *VacationLedger {
	return &VacationLedger{dm: dm, log: log}
}

func (l *VacationLedger) lockFor(userID string) *sync.Mutex {
	mu, _ := l.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Register stores a vacation range for the user. Returns the effective range
// after merging and whether an existing range was absorbed.
func (l *VacationLedger) Register(ctx context.Context, userID string, startDate, endDate time.Time) (effectiveStart, effectiveEnd time.Time, merged bool, err error) {
	start := entity.DateOnly(startDate)
	end := entity.DateOnly(endDate)

	if end.Before(start) {
		return time.Time{}, time.Time{}, false, domain.ErrInvalidRange
	}

	mu := l.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	effectiveStart, effectiveEnd = start, end

	err = l.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Vacation().GetByUser(userID)
		if err != nil {
			return fmt.Errorf("failed to load vacations: %w", err)
		}

		var absorbed []int64
		for _, v := range existing {
			if !rangesTouch(effectiveStart, effectiveEnd, v.StartDate, v.EndDate) {
				continue
			}
			if v.StartDate.Before(effectiveStart) {
				effectiveStart = v.StartDate
			}
			if v.EndDate.After(effectiveEnd) {
				effectiveEnd = v.EndDate
			}
			absorbed = append(absorbed, v.ID)
		}

		for _, id := range absorbed {
			if err := tx.Vacation().Delete(id); err != nil {
				return fmt.Errorf("failed to remove absorbed vacation: %w", err)
			}
		}

		merged = len(absorbed) > 0
		return tx.Vacation().Create(&entity.VacationRange{
			UserID:    userID,
			StartDate: effectiveStart,
			EndDate:   effectiveEnd,
		})
	})
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	l.log.Info("vacation registered",
		zap.String("user", userID),
		zap.String("start", effectiveStart.Format(domain.DateLayout)),
		zap.String("end", effectiveEnd.Format(domain.DateLayout)),
		zap.Bool("merged", merged))

	return effectiveStart, effectiveEnd, merged, nil
}

// CancelAll removes every vacation range for the user and returns how many
// ranges were removed.
func (l *VacationLedger) CancelAll(ctx context.Context, userID string) (int64, error) {
	mu := l.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	count, err := l.dm.Vacation().DeleteByUser(userID)
	if err != nil {
		return 0, err
	}

	l.log.Info("vacations cancelled", zap.String("user", userID), zap.Int64("count", count))
	return count, nil
}

// IsOnVacation reports whether the user has a range covering date.
func (l *VacationLedger) IsOnVacation(ctx context.Context, userID string, date time.Time) (bool, error) {
	v, err := l.dm.Vacation().GetByUserAndDate(userID, entity.DateOnly(date))
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

// ListRanges returns the user's vacation ranges ordered by start date.
func (l *VacationLedger) ListRanges(ctx context.Context, userID string) ([]*entity.VacationRange, error) {
	return l.dm.Vacation().GetByUser(userID)
}

// rangesTouch reports whether [s1, e1] and [s2, e2] overlap or are adjacent
// (end of one is the day before the start of the other).
func rangesTouch(s1, e1, s2, e2 time.Time) bool {
	return !s2.After(e1.AddDate(0, 0, 1)) && !e2.Before(s1.AddDate(0, 0, -1))
}
