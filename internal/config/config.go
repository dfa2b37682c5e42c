package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	SlackBotToken       string `envconfig:"SLACK_BOT_TOKEN" required:"true"`
	SlackSigningSecret  string `envconfig:"SLACK_SIGNING_SECRET" required:"true"`
	VerificationChannel string `envconfig:"VERIFICATION_CHANNEL" required:"true"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"./attendance.db"`
	Port         string `envconfig:"PORT" default:"3000"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error

	Timezone string `envconfig:"TIMEZONE" default:"Asia/Seoul"`

	// Check-in window boundaries, local time.
	WindowStartHour   int `envconfig:"WINDOW_START_HOUR" default:"0"`
	WindowStartMinute int `envconfig:"WINDOW_START_MINUTE" default:"0"`
	WindowEndHour     int `envconfig:"WINDOW_END_HOUR" default:"23"`
	WindowEndMinute   int `envconfig:"WINDOW_END_MINUTE" default:"59"`
	WindowEndSecond   int `envconfig:"WINDOW_END_SECOND" default:"59"`

	// Trigger firing times, local time.
	DailyCheckHour      int `envconfig:"DAILY_CHECK_HOUR" default:"22"`
	DailyCheckMinute    int `envconfig:"DAILY_CHECK_MINUTE" default:"0"`
	PreviousCheckHour   int `envconfig:"PREVIOUS_CHECK_HOUR" default:"9"`
	PreviousCheckMinute int `envconfig:"PREVIOUS_CHECK_MINUTE" default:"0"`

	VerificationKeywords []string `envconfig:"VERIFICATION_KEYWORDS" default:"proof"`
	MaxMessageLength     int      `envconfig:"MAX_MESSAGE_LENGTH" default:"1900"`
	MaxMentionsPerChunk  int      `envconfig:"MAX_MENTIONS_PER_CHUNK" default:"0"` // 0 = unbounded
	MaxAttachmentSize    int64    `envconfig:"MAX_ATTACHMENT_SIZE" default:"9437184"`
	HistoryPageLimit     int      `envconfig:"HISTORY_PAGE_LIMIT" default:"1000"`

	WebhookURL        string        `envconfig:"WEBHOOK_URL"`
	WebhookTimeout    time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"10s"`
	WebhookMaxRetries int           `envconfig:"WEBHOOK_MAX_RETRIES" default:"3"`

	SkipHolidays bool `envconfig:"SKIP_HOLIDAYS" default:"true"`
}

// Load reads environment variables into Config and resolves the timezone.
func Load() (Config, *time.Location, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return cfg, nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	return cfg, loc, nil
}
