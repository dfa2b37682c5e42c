package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

// pageCounterReserve sizes the room kept for the "(i/n)" page marker.
const pageCounterReserve = "\n(99/99)"

// DispatcherConfig bounds outgoing messages.
type DispatcherConfig struct {
	MaxMessageLength    int
	MaxMentionsPerChunk int // 0 means unbounded
}

// Dispatcher formats and sends check results to the channel and mirrors
// them through the outbound webhook. Webhook failures never affect the
// channel-message outcome.
type Dispatcher struct {
	chat    contract.ChatClient
	hook    contract.WebhookSender
	windows *WindowCalculator
	cfg     DispatcherConfig
	clock   func() time.Time
	log     *zap.Logger
}

func NewDispatcher(chat contract.ChatClient, hook contract.WebhookSender, windows *WindowCalculator, cfg DispatcherConfig, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		chat:    chat,
		hook:    hook,
		windows: windows,
		cfg:     cfg,
		clock:   time.Now,
		log:     log,
	}
}

// Announce sends the check outcome for the given trigger: a single
// all-verified message when no one is missing, otherwise one message per
// mention chunk rendered into template's {members} placeholder.
func (d *Dispatcher) Announce(ctx context.Context, channelID string, unverified []entity.Member, template string, trigger domain.Trigger) error {
	if len(unverified) == 0 {
		text := AllVerifiedYesterdayMessage
		if trigger == domain.TriggerDaily {
			text = AllVerifiedDailyMessage
		}
		if _, err := d.chat.PostMessage(ctx, channelID, text); err != nil {
			return fmt.Errorf("failed to send all-verified message: %w", err)
		}
		d.mirror(ctx, text, nil)
		return nil
	}

	suffix := ""
	if trigger == domain.TriggerDaily {
		now := d.clock()
		window := d.windows.WindowForToday(now)
		suffix = fmt.Sprintf("\n⏰ Time remaining: %s (window closes %s)",
			formatDuration(window.End.Sub(now)),
			window.End.Format("2006-01-02 15:04:05"))
	}

	// The chunk budget must leave room for everything rendered around the
	// mentions: the template, the suffix and the page counter.
	overhead := len(template) - len(membersPlaceholder) + len(suffix) + len(pageCounterReserve)
	chunks := chunkMentions(unverified, d.cfg.MaxMessageLength-overhead, d.cfg.MaxMentionsPerChunk)

	for i, chunk := range chunks {
		text := strings.Replace(template, membersPlaceholder, chunk, 1) + suffix
		if len(chunks) > 1 {
			text += fmt.Sprintf("\n(%d/%d)", i+1, len(chunks))
		}
		if _, err := d.chat.PostMessage(ctx, channelID, text); err != nil {
			return fmt.Errorf("failed to send unverified notice: %w", err)
		}
	}

	d.mirror(ctx, fmt.Sprintf("⚠️ %d member(s) have not checked in", len(unverified)), unverified)
	return nil
}

// mirror forwards the outcome through the webhook channel, best-effort.
func (d *Dispatcher) mirror(ctx context.Context, content string, unverified []entity.Member) {
	if d.hook == nil || !d.hook.Enabled() {
		return
	}

	if len(unverified) > 0 {
		names := make([]string, 0, len(unverified))
		for _, m := range unverified {
			names = append(names, m.DisplayName)
		}
		content += ": " + strings.Join(names, ", ")
	}

	err := d.hook.Send(ctx, contract.WebhookPayload{
		Author:  "attendance-bot",
		Content: content,
		SentAt:  d.clock().Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		d.log.Warn("webhook mirror failed", zap.Error(err))
	}
}

// chunkMentions partitions member mentions so no chunk's mention text
// exceeds maxLen and, when maxMentions > 0, no chunk carries more than
// maxMentions mentions — whichever limit is hit first starts a new chunk.
func chunkMentions(members []entity.Member, maxLen, maxMentions int) []string {
	if len(members) == 0 {
		return nil
	}

	var chunks []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			currentLen = 0
		}
	}

	for _, member := range members {
		mention := member.Mention()
		if len(current) > 0 {
			tooLong := currentLen+1+len(mention) > maxLen
			tooMany := maxMentions > 0 && len(current) >= maxMentions
			if tooLong || tooMany {
				flush()
			}
		}
		if len(current) > 0 {
			currentLen++ // separator
		}
		current = append(current, mention)
		currentLen += len(mention)
	}
	flush()

	return chunks
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
