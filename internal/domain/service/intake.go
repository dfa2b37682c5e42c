package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

// IntakeConfig controls proof message validation.
type IntakeConfig struct {
	Keywords          []string
	MaxAttachmentSize int64
	Location          *time.Location
}

// Intake handles inbound proof messages: it validates the keyword and image
// attachment, appends a verification record, and confirms in the channel.
// Reactions are non-critical side effects; their failures are only logged.
type Intake struct {
	dm    contract.DataManager
	chat  contract.ChatClient
	hook  contract.WebhookSender
	cfg   IntakeConfig
	clock func() time.Time
	log   *zap.Logger
}

func NewIntake(dm contract.DataManager, chat contract.ChatClient, hook contract.WebhookSender, cfg IntakeConfig, log *zap.Logger) *Intake {
	return &Intake{
		dm:    dm,
		chat:  chat,
		hook:  hook,
		cfg:   cfg,
		clock: time.Now,
		log:   log,
	}
}

// ProcessMessage inspects a channel message and records it as a verification
// when it qualifies. Non-proof messages are ignored.
func (s *Intake) ProcessMessage(ctx context.Context, channelID string, msg entity.Message) error {
	if !isProofText(msg.Text, s.cfg.Keywords) {
		return nil
	}

	s.bestEffort("react hourglass", func() error {
		return s.chat.AddReaction(ctx, channelID, msg.Ref, "hourglass")
	})

	imageURLs := proofImageURLs(msg.Attachments, s.cfg.MaxAttachmentSize)
	if len(imageURLs) == 0 {
		s.bestEffort("react failure", func() error {
			return s.chat.AddReaction(ctx, channelID, msg.Ref, "x")
		})
		text := fmt.Sprintf("<@%s> ❌ No image attached. Please attach a proof image and try again.", msg.AuthorID)
		if _, err := s.chat.PostMessage(ctx, channelID, text); err != nil {
			return fmt.Errorf("failed to send missing-image notice: %w", err)
		}
		return nil
	}

	authorName := s.resolveAuthorName(ctx, msg)

	now := s.clock().In(s.cfg.Location)
	record := &entity.VerificationRecord{
		ID:               uuid.NewString(),
		UserID:           msg.AuthorID,
		Username:         authorName,
		MessageContent:   msg.Text,
		ImageURLs:        imageURLs,
		VerificationDate: now.Format(domain.DateLayout),
		VerificationTime: now.Format(domain.TimeLayout),
	}

	if err := s.dm.Verification().Create(record); err != nil {
		s.log.Error("failed to store verification", zap.String("user", msg.AuthorID), zap.Error(err))
		s.bestEffort("react failure", func() error {
			return s.chat.AddReaction(ctx, channelID, msg.Ref, "x")
		})
		text := fmt.Sprintf("<@%s> ❌ Verification could not be recorded. Please try again later.", msg.AuthorID)
		if _, postErr := s.chat.PostMessage(ctx, channelID, text); postErr != nil {
			s.log.Error("failed to send failure notice", zap.Error(postErr))
		}
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.bestEffort("react success", func() error {
		return s.chat.AddReaction(ctx, channelID, msg.Ref, "white_check_mark")
	})

	text := fmt.Sprintf("<@%s> ✅ Checked in at %s. The bill comes due. Always!", msg.AuthorID, now.Format("2006-01-02 15:04:05"))
	if _, err := s.chat.PostMessage(ctx, channelID, text); err != nil {
		s.log.Error("failed to send confirmation", zap.Error(err))
	}

	if s.hook != nil && s.hook.Enabled() {
		err := s.hook.Send(ctx, contract.WebhookPayload{
			Author:    authorName,
			Content:   msg.Text,
			ImageURLs: imageURLs,
			SentAt:    now.Format("2006-01-02 15:04:05"),
		})
		if err != nil {
			s.log.Warn("webhook mirror failed", zap.Error(err))
		}
	}

	s.log.Info("verification recorded",
		zap.String("user", msg.AuthorID),
		zap.String("date", record.VerificationDate),
		zap.Int("images", len(imageURLs)))

	return nil
}

// resolveAuthorName fills in the display name when the message carries none,
// which is the normal case for user messages arriving over the Events API.
// Falls back to the user id so a lookup failure never blocks a check-in.
func (s *Intake) resolveAuthorName(ctx context.Context, msg entity.Message) string {
	if msg.AuthorName != "" {
		return msg.AuthorName
	}

	member, err := s.chat.GetMember(ctx, msg.AuthorID)
	if err != nil {
		s.log.Debug("failed to resolve author name", zap.String("user", msg.AuthorID), zap.Error(err))
		return msg.AuthorID
	}
	return member.DisplayName
}

// bestEffort runs a non-critical side effect; failure is logged, never
// propagated.
func (s *Intake) bestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		s.log.Debug("non-critical side effect failed", zap.String("op", op), zap.Error(err))
	}
}
