package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
)

type CommandType string

const (
	CmdCheck     CommandType = "check"
	CmdYesterday CommandType = "yesterday"
	CmdNextRun   CommandType = "next-run"
	CmdHolidays  CommandType = "holidays"
	CmdVacation  CommandType = "vacation"
	CmdStatus    CommandType = "status"
	CmdHelp      CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "check":
		cmd.Type = CmdCheck
	case "yesterday":
		cmd.Type = CmdYesterday
	case "next-run", "nextrun", "next":
		cmd.Type = CmdNextRun
	case "holidays", "holiday":
		cmd.Type = CmdHolidays
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "vacation", "vac":
		cmd.Type = CmdVacation
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "status":
		cmd.Type = CmdStatus
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParseDateRange parses "YYYY-MM-DD" or "YYYY-MM-DD ~ YYYY-MM-DD" from
// already-split args. A single date yields start == end. The separator may be
// attached to either date or stand alone.
func ParseDateRange(args []string, loc *time.Location) (start, end time.Time, err error) {
	joined := strings.Join(args, " ")
	parts := strings.Split(joined, "~")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 1:
		start, err = time.ParseInLocation(domain.DateLayout, parts[0], loc)
		if err != nil {
			return start, end, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", parts[0])
		}
		return start, start, nil
	case 2:
		start, err = time.ParseInLocation(domain.DateLayout, parts[0], loc)
		if err != nil {
			return start, end, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", parts[0])
		}
		end, err = time.ParseInLocation(domain.DateLayout, parts[1], loc)
		if err != nil {
			return start, end, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", parts[1])
		}
		return start, end, nil
	default:
		return start, end, fmt.Errorf("expected YYYY-MM-DD or YYYY-MM-DD ~ YYYY-MM-DD")
	}
}

func GetHelpText() string {
	return `*Available commands:*

*Checks:*
• ` + "`/attend check`" + ` - Run today's attendance check now
• ` + "`/attend yesterday`" + ` - Run the previous-day check now
• ` + "`/attend next-run`" + ` - Show when the next automatic checks fire

*Vacations:*
• ` + "`/attend vacation 2025-01-10`" + ` - Register a single vacation day
• ` + "`/attend vacation 2025-01-10 ~ 2025-01-15`" + ` - Register a vacation range
• ` + "`/attend vacation cancel`" + ` - Cancel all your vacations
• ` + "`/attend vacation list`" + ` - List your registered vacations

*Holidays:*
• ` + "`/attend holidays on|off`" + ` - Toggle holiday skipping
• ` + "`/attend holidays add 2025-01-01 New Year`" + ` - Register a holiday
• ` + "`/attend holidays remove 2025-01-01`" + ` - Remove a holiday
• ` + "`/attend holidays list`" + ` - List registered holidays

*Other:*
• ` + "`/attend status`" + ` - Show bot status for this channel
• ` + "`/attend help`" + ` - Show this help`
}
