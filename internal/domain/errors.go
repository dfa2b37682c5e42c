package domain

import "errors"

// Engine error taxonomy. No error here is process-fatal: every failure is
// caught at the operation boundary and the surrounding trigger or intake
// handler degrades gracefully.
var (
	// ErrPermissionDenied means the bot lacks a platform permission
	// (read history, list members, send). Aborts the current run; no
	// retry until the next scheduled firing.
	ErrPermissionDenied = errors.New("missing required platform permission")

	// ErrInvalidRange rejects a vacation registration whose end date
	// precedes its start date.
	ErrInvalidRange = errors.New("vacation end date before start date")

	// ErrChannelNotFound means the watched channel could not be resolved.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrStoreUnavailable wraps store read/write failures that abort the
	// current run.
	ErrStoreUnavailable = errors.New("verification store unavailable")

	// Webhook failures are non-fatal to the caller; the channel
	// notification proceeds independently.
	ErrWebhookRejected    = errors.New("webhook rejected the request")
	ErrWebhookFailed      = errors.New("webhook returned a non-success status")
	ErrWebhookUnavailable = errors.New("webhook endpoint unreachable")
)
