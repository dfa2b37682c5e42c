package test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/config"
	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/internal/domain/service"
	"github.com/attendbot/slack-attendance-bot/internal/handlers"
	"github.com/attendbot/slack-attendance-bot/mocks"
)

const (
	SigningSecret = "test-signing-secret"
	ChannelID     = "C123456789"
)

type ServiceMocks struct {
	DataManagerMock      *mocks.MockDataManager
	VerificationRepoMock *mocks.MockVerificationRepo
	VacationRepoMock     *mocks.MockVacationRepo
	HolidayRepoMock      *mocks.MockHolidayRepo
	ChatClientMock       *mocks.MockChatClient
	WebhookSenderMock    *mocks.MockWebhookSender
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	m = ServiceMocks{
		DataManagerMock:      dm,
		VerificationRepoMock: mocks.NewMockVerificationRepo(ctrl),
		VacationRepoMock:     mocks.NewMockVacationRepo(ctrl),
		HolidayRepoMock:      mocks.NewMockHolidayRepo(ctrl),
		ChatClientMock:       mocks.NewMockChatClient(ctrl),
		WebhookSenderMock:    mocks.NewMockWebhookSender(ctrl),
	}

	dm.EXPECT().Verification().Return(m.VerificationRepoMock).AnyTimes()
	dm.EXPECT().Vacation().Return(m.VacationRepoMock).AnyTimes()
	dm.EXPECT().Holiday().Return(m.HolidayRepoMock).AnyTimes()
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	cfg := config.Config{
		SlackBotToken:        "test-token",
		SlackSigningSecret:   SigningSecret,
		VerificationChannel:  ChannelID,
		WindowStartHour:      12,
		WindowEndHour:        3,
		DailyCheckHour:       22,
		PreviousCheckHour:    9,
		VerificationKeywords: []string{"proof"},
		MaxMessageLength:     1900,
		MaxAttachmentSize:    9 * 1024 * 1024,
		HistoryPageLimit:     1000,
		SkipHolidays:         true,
	}

	services := service.NewInstance(dm, m.ChatClientMock, m.WebhookSenderMock, cfg, time.UTC, zap.NewNop())
	handler = handlers.New(services, dm, SigningSecret, ChannelID, time.UTC, zap.NewNop())

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"test-channel"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	SignRequest(req, SigningSecret, body)
	return req
}

// CreateEventRequest creates a properly signed Events API request carrying the
// given JSON body.
func CreateEventRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	SignRequest(req, SigningSecret, body)
	return req
}

func SignRequest(req *http.Request, signingSecret, body string) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	return fmt.Sprintf("v0=%s", hex.EncodeToString(h.Sum(nil)))
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
