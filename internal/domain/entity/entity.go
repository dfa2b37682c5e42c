package entity

import "time"

// VerificationRecord is one accepted proof message. Immutable once created;
// the engine only appends and reads.
type VerificationRecord struct {
	ID               string
	UserID           string
	Username         string
	MessageContent   string
	ImageURLs        []string
	VerificationDate string // YYYY-MM-DD, local calendar date
	VerificationTime string // HH:MM:SS, local wall clock
	CreatedAt        time.Time
}

// VacationRange is a per-user exemption window. Invariant: StartDate <= EndDate.
type VacationRange struct {
	ID        int64
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
}

// Contains reports whether date falls inside the range, inclusive on both ends.
func (v VacationRange) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(v.StartDate)) && !d.After(DateOnly(v.EndDate))
}

// Holiday is externally maintained reference data; the engine only performs
// point lookups by date.
type Holiday struct {
	Date      time.Time
	Name      string
	CreatedAt time.Time
}

// CheckWindow is the span during which a proof message counts for one
// calendar day. Computed on demand, never persisted. Start < End.
type CheckWindow struct {
	Start time.Time
	End   time.Time
}

// Member is a channel member as seen by the chat platform.
type Member struct {
	ID          string
	DisplayName string
	IsBot       bool
}

// Mention renders the platform mention token for the member.
func (m Member) Mention() string {
	return "<@" + m.ID + ">"
}

// Attachment is a file attached to a chat message.
type Attachment struct {
	ContentType string
	Size        int64
	URL         string
}

// Message is a chat message fetched from channel history.
type Message struct {
	// Ref is the platform message id, used when reacting to the message.
	Ref         string
	AuthorID    string
	AuthorName  string
	Text        string
	Attachments []Attachment
	Timestamp   time.Time
}

// DateOnly truncates t to its calendar date, preserving location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
