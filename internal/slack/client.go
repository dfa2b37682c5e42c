package slack

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

// maxHistoryPages caps the pagination walk so a very large channel cannot
// stall a check run; anything beyond the cap is out of window-scan reach.
const maxHistoryPages = 10

// Client adapts the Slack Web API to the chat surface the engine consumes.
type Client struct {
	api *slack.Client
	log *zap.Logger
}

func NewClient(api *slack.Client, log *zap.Logger) *Client {
	return &Client{api: api, log: log}
}

func (c *Client) PostMessage(ctx context.Context, channelID, text string) (string, error) {
	_, ts, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return "", mapError(err)
	}
	return ts, nil
}

func (c *Client) FetchHistory(ctx context.Context, channelID string, after, before time.Time, limit int) ([]entity.Message, error) {
	var messages []entity.Message
	cursor := ""

	for page := 0; page < maxHistoryPages; page++ {
		resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID: channelID,
			Oldest:    slackTimestamp(after),
			Latest:    slackTimestamp(before),
			Limit:     limit,
			Cursor:    cursor,
		})
		if err != nil {
			return nil, mapError(err)
		}

		for _, msg := range resp.Messages {
			messages = append(messages, toEntityMessage(msg))
		}

		if !resp.HasMore || resp.ResponseMetaData.NextCursor == "" {
			break
		}
		cursor = resp.ResponseMetaData.NextCursor
	}

	return messages, nil
}

func (c *Client) ListMembers(ctx context.Context, channelID string) ([]entity.Member, error) {
	var userIDs []string
	cursor := ""

	for {
		ids, next, err := c.api.GetUsersInConversationContext(ctx, &slack.GetUsersInConversationParameters{
			ChannelID: channelID,
			Cursor:    cursor,
			Limit:     200,
		})
		if err != nil {
			return nil, mapError(err)
		}
		userIDs = append(userIDs, ids...)
		if next == "" {
			break
		}
		cursor = next
	}

	members := make([]entity.Member, 0, len(userIDs))
	for start := 0; start < len(userIDs); start += 30 {
		end := start + 30
		if end > len(userIDs) {
			end = len(userIDs)
		}
		users, err := c.api.GetUsersInfoContext(ctx, userIDs[start:end]...)
		if err != nil {
			return nil, mapError(err)
		}
		for _, user := range *users {
			members = append(members, entity.Member{
				ID:          user.ID,
				DisplayName: displayName(user),
				IsBot:       user.IsBot || user.ID == "USLACKBOT",
			})
		}
	}

	return members, nil
}

func (c *Client) GetMember(ctx context.Context, userID string) (entity.Member, error) {
	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return entity.Member{}, mapError(err)
	}
	return entity.Member{
		ID:          user.ID,
		DisplayName: displayName(*user),
		IsBot:       user.IsBot || user.ID == "USLACKBOT",
	}, nil
}

func (c *Client) AddReaction(ctx context.Context, channelID, messageTS, emoji string) error {
	err := c.api.AddReactionContext(ctx, emoji, slack.ItemRef{
		Channel:   channelID,
		Timestamp: messageTS,
	})
	if err != nil {
		return mapError(err)
	}
	return nil
}

func toEntityMessage(msg slack.Message) entity.Message {
	attachments := make([]entity.Attachment, 0, len(msg.Files))
	for _, f := range msg.Files {
		attachments = append(attachments, entity.Attachment{
			ContentType: f.Mimetype,
			Size:        int64(f.Size),
			URL:         f.URLPrivate,
		})
	}

	return entity.Message{
		Ref:         msg.Timestamp,
		AuthorID:    msg.User,
		AuthorName:  msg.Username,
		Text:        msg.Text,
		Attachments: attachments,
		Timestamp:   parseSlackTimestamp(msg.Timestamp),
	}
}

func displayName(user slack.User) string {
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	if user.RealName != "" {
		return user.RealName
	}
	return user.Name
}

// slackTimestamp renders a time as the fractional unix-seconds format the
// history API expects.
func slackTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/1000)
}

func parseSlackTimestamp(ts string) time.Time {
	f, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		return time.Time{}
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// mapError translates Slack API errors onto the domain taxonomy so callers
// can branch with errors.Is.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch err.Error() {
	case "missing_scope", "not_in_channel", "not_authed", "invalid_auth", "token_revoked", "no_permission":
		return fmt.Errorf("%w: %v", domain.ErrPermissionDenied, err)
	case "channel_not_found":
		return fmt.Errorf("%w: %v", domain.ErrChannelNotFound, err)
	}
	return err
}
