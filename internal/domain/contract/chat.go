package contract

import (
	"context"
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

// ChatClient is the narrow chat-platform surface the engine needs.
// Implementations map platform errors onto the domain taxonomy
// (domain.ErrPermissionDenied, domain.ErrChannelNotFound) so callers can
// branch with errors.Is.
type ChatClient interface {
	// PostMessage sends a text message and returns its platform timestamp/id.
	PostMessage(ctx context.Context, channelID, text string) (string, error)

	// FetchHistory returns messages in [after, before), newest first, bounded
	// by limit.
	FetchHistory(ctx context.Context, channelID string, after, before time.Time, limit int) ([]entity.Message, error)

	// ListMembers enumerates the members of the channel.
	ListMembers(ctx context.Context, channelID string) ([]entity.Member, error)

	// GetMember resolves a single member by user id.
	GetMember(ctx context.Context, userID string) (entity.Member, error)

	// AddReaction reacts to a message. Callers treat failures as non-critical.
	AddReaction(ctx context.Context, channelID, messageTS, emoji string) error
}
