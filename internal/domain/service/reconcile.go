package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

// ReconcilerConfig bounds the fallback history scan and message validation.
type ReconcilerConfig struct {
	Keywords          []string
	MaxAttachmentSize int64
	HistoryPageLimit  int
}

// Reconciler computes the verified and unverified member sets for a window.
// The persisted record store is the primary source of truth; channel history
// is a corroboration pass that tolerates message deletion on either side.
type Reconciler struct {
	dm     contract.DataManager
	chat   contract.ChatClient
	ledger *VacationLedger
	cfg    ReconcilerConfig
	log    *zap.Logger
}

func NewReconciler(dm contract.DataManager, chat contract.ChatClient, ledger *VacationLedger, cfg ReconcilerConfig, log *zap.Logger) *Reconciler {
	return &Reconciler{dm: dm, chat: chat, ledger: ledger, cfg: cfg, log: log}
}

// Reconcile returns the verified user-id set and the members who are neither
// verified, nor on vacation, nor bots, for the given window. Permission and
// channel failures surface unwrapped so callers can abort the run with
// errors.Is.
func (r *Reconciler) Reconcile(ctx context.Context, channelID string, window entity.CheckWindow) (map[string]struct{}, []entity.Member, error) {
	verified := make(map[string]struct{})

	records, err := r.dm.Verification().GetByDateRange(entity.DateOnly(window.Start), entity.DateOnly(window.End))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load verification records: %w", err)
	}
	for _, record := range records {
		verified[record.UserID] = struct{}{}
	}

	messages, err := r.chat.FetchHistory(ctx, channelID, window.Start, window.End, r.cfg.HistoryPageLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch channel history: %w", err)
	}
	for _, msg := range messages {
		if !isProofText(msg.Text, r.cfg.Keywords) {
			continue
		}
		for _, a := range msg.Attachments {
			if isValidImage(a, r.cfg.MaxAttachmentSize) {
				verified[msg.AuthorID] = struct{}{}
				break
			}
		}
	}

	members, err := r.chat.ListMembers(ctx, channelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list members: %w", err)
	}

	// Vacation exemption is checked against the window end's calendar date
	// for both the daily and the previous-day trigger.
	vacationDate := entity.DateOnly(window.End)

	var unverified []entity.Member
	for _, member := range members {
		if member.IsBot {
			continue
		}
		if _, ok := verified[member.ID]; ok {
			continue
		}

		onVacation, err := r.ledger.IsOnVacation(ctx, member.ID, vacationDate)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check vacation for %s: %w", member.ID, err)
		}
		if onVacation {
			continue
		}

		unverified = append(unverified, member)
	}

	r.log.Info("reconciliation complete",
		zap.String("channel", channelID),
		zap.Int("verified", len(verified)),
		zap.Int("unverified", len(unverified)))

	return verified, unverified, nil
}
