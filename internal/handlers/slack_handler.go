package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
	"github.com/attendbot/slack-attendance-bot/internal/domain/service"
	slackcmd "github.com/attendbot/slack-attendance-bot/internal/slack"
)

const checkTimeout = 5 * time.Minute

// SlackHandler terminates the Slack HTTP surface: signature-verified slash
// commands and Events API callbacks.
type SlackHandler struct {
	services      *service.Instance
	dm            contract.DataManager
	signingSecret string
	channelID     string
	loc           *time.Location
	log           *zap.Logger
}

func New(services *service.Instance, dm contract.DataManager, signingSecret, channelID string, loc *time.Location, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		services:      services,
		dm:            dm,
		signingSecret: signingSecret,
		channelID:     channelID,
		loc:           loc,
		log:           log,
	}
}

// verifiedBody reads the request body and checks the Slack signature.
func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}
	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}
	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.verifiedBody(w, r); !ok {
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdCheck:
		return h.handleCheck()
	case slackcmd.CmdYesterday:
		return h.handleYesterday()
	case slackcmd.CmdNextRun:
		return h.handleNextRun()
	case slackcmd.CmdHolidays:
		return h.handleHolidays(cmd)
	case slackcmd.CmdVacation:
		return h.handleVacation(ctx, cmd, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unrecognized command")
	}
}

// handleCheck runs today's check in the background; Slack requires a slash
// command response within seconds.
func (h *SlackHandler) handleCheck() *slack.Msg {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		if err := h.services.Scheduler.RunDailyCheck(ctx); err != nil {
			h.log.Error("manual daily check failed", zap.Error(err))
		}
	}()

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "🔍 Running today's attendance check...",
	}
}

func (h *SlackHandler) handleYesterday() *slack.Msg {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		if err := h.services.Scheduler.RunPreviousDayCheck(ctx); err != nil {
			h.log.Error("manual previous-day check failed", zap.Error(err))
		}
	}()

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "🔍 Running the previous-day attendance check...",
	}
}

func (h *SlackHandler) handleNextRun() *slack.Msg {
	daily, previous := h.services.Scheduler.NextRuns()
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("*Next automatic runs:*\n• Daily check: %s\n• Previous-day check: %s",
			daily.Format("2006-01-02 15:04 MST"),
			previous.Format("2006-01-02 15:04 MST")),
	}
}

func (h *SlackHandler) handleHolidays(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `holidays on|off|add|remove|list`")
	}

	switch cmd.Args[0] {
	case "on":
		h.services.Skip.SetSkipHolidays(true)
		return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: "✅ Holiday skipping enabled."}

	case "off":
		h.services.Skip.SetSkipHolidays(false)
		return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: "✅ Holiday skipping disabled."}

	case "add":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Use: `holidays add YYYY-MM-DD [name]`")
		}
		date, err := time.ParseInLocation(domain.DateLayout, cmd.Args[1], h.loc)
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", cmd.Args[1]))
		}
		name := strings.Join(cmd.Args[2:], " ")
		if err := h.dm.Holiday().Upsert(&entity.Holiday{Date: date, Name: name}); err != nil {
			return h.createErrorResponse("Could not register holiday")
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Holiday registered: %s %s", date.Format(domain.DateLayout), name),
		}

	case "remove", "rm":
		if len(cmd.Args) < 2 {
			return h.createErrorResponse("Use: `holidays remove YYYY-MM-DD`")
		}
		date, err := time.ParseInLocation(domain.DateLayout, cmd.Args[1], h.loc)
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", cmd.Args[1]))
		}
		if err := h.dm.Holiday().Delete(date); err != nil {
			return h.createErrorResponse("Could not remove holiday")
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Holiday removed: %s", date.Format(domain.DateLayout)),
		}

	case "list", "ls":
		holidays, err := h.dm.Holiday().List()
		if err != nil {
			return h.createErrorResponse("Could not list holidays")
		}
		if len(holidays) == 0 {
			return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "No holidays registered."}
		}
		var b strings.Builder
		b.WriteString("*Registered holidays:*\n")
		for _, holiday := range holidays {
			b.WriteString(fmt.Sprintf("• %s %s\n", holiday.Date.Format(domain.DateLayout), holiday.Name))
		}
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: b.String()}

	default:
		return h.createErrorResponse(fmt.Sprintf("Unknown holidays subcommand: %s", cmd.Args[0]))
	}
}

func (h *SlackHandler) handleVacation(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `vacation YYYY-MM-DD [~ YYYY-MM-DD]`, `vacation cancel` or `vacation list`")
	}

	switch cmd.Args[0] {
	case "cancel":
		count, err := h.services.Vacations.CancelAll(ctx, slashCmd.UserID)
		if err != nil {
			return h.createErrorResponse("Could not cancel vacations")
		}
		if count == 0 {
			return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "You had no registered vacations."}
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ <@%s> cancelled %d vacation range(s).", slashCmd.UserID, count),
		}

	case "list", "ls":
		ranges, err := h.services.Vacations.ListRanges(ctx, slashCmd.UserID)
		if err != nil {
			return h.createErrorResponse("Could not list vacations")
		}
		if len(ranges) == 0 {
			return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "You have no registered vacations."}
		}
		var b strings.Builder
		b.WriteString("*Your vacations:*\n")
		for _, v := range ranges {
			b.WriteString(fmt.Sprintf("• %s ~ %s\n",
				v.StartDate.Format(domain.DateLayout), v.EndDate.Format(domain.DateLayout)))
		}
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: b.String()}

	default:
		start, end, err := slackcmd.ParseDateRange(cmd.Args, h.loc)
		if err != nil {
			return h.createErrorResponse(err.Error())
		}
		mergedStart, mergedEnd, merged, err := h.services.Vacations.Register(ctx, slashCmd.UserID, start, end)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRange) {
				return h.createErrorResponse("End date must not be before the start date")
			}
			return h.createErrorResponse("Could not register vacation")
		}

		text := fmt.Sprintf("✅ <@%s> is on vacation %s ~ %s.",
			slashCmd.UserID,
			mergedStart.Format(domain.DateLayout),
			mergedEnd.Format(domain.DateLayout))
		if merged {
			text += " (merged with an existing range)"
		}
		return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: text}
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	daily, previous := h.services.Scheduler.NextRuns()
	window := h.services.Windows.WindowForToday(time.Now().In(h.loc))

	holidayToggle := "off"
	if h.services.Skip.SkipHolidays() {
		holidayToggle = "on"
	}

	// The window's start date is the calendar day verifications count for.
	checkedIn := "❌ not yet"
	record, err := h.dm.Verification().GetByUserAndDate(slashCmd.UserID, entity.DateOnly(window.Start))
	if err != nil {
		checkedIn = "unknown (store error)"
	} else if record != nil {
		checkedIn = fmt.Sprintf("✅ at %s", record.VerificationTime)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf(
			"*Attendance bot status:*\n• Channel: <#%s>\n• Today's window: %s ~ %s\n• You checked in: %s\n• Holiday skipping: %s\n• Next daily check: %s\n• Next previous-day check: %s",
			h.channelID,
			window.Start.Format("2006-01-02 15:04"),
			window.End.Format("2006-01-02 15:04"),
			checkedIn,
			holidayToggle,
			daily.Format("2006-01-02 15:04 MST"),
			previous.Format("2006-01-02 15:04 MST")),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// HandleEvents terminates the Events API: URL verification handshakes and
// channel message callbacks feeding the intake pipeline.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, challenge.Challenge)

	case slackevents.CallbackEvent:
		if msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			h.processMessageEvent(msg)
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (h *SlackHandler) processMessageEvent(ev *slackevents.MessageEvent) {
	if ev.Channel != h.channelID || ev.BotID != "" {
		return
	}
	// Uploads arrive as the file_share subtype; every other subtype (edits,
	// joins, bot noise) is not a proof candidate.
	if ev.SubType != "" && ev.SubType != "file_share" {
		return
	}

	// Files ride on the embedded raw message, not the event struct itself.
	var attachments []entity.Attachment
	if ev.Message != nil {
		for _, f := range ev.Message.Files {
			attachments = append(attachments, entity.Attachment{
				ContentType: f.Mimetype,
				Size:        int64(f.Size),
				URL:         f.URLPrivate,
			})
		}
	}

	msg := entity.Message{
		Ref:         ev.TimeStamp,
		AuthorID:    ev.User,
		AuthorName:  ev.Username,
		Text:        ev.Text,
		Attachments: attachments,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.services.Intake.ProcessMessage(ctx, ev.Channel, msg); err != nil {
			h.log.Error("intake failed", zap.String("user", ev.User), zap.Error(err))
		}
	}()
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
