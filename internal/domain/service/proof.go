package service

import (
	"strings"

	"github.com/attendbot/slack-attendance-bot/internal/domain/entity"
)

// isProofText reports whether the message text contains any of the
// configured verification keywords.
func isProofText(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// isValidImage reports whether the attachment is an image within the size
// limit.
func isValidImage(a entity.Attachment, maxSize int64) bool {
	return strings.HasPrefix(a.ContentType, "image/") && a.Size <= maxSize
}

// proofImageURLs collects the URLs of all valid image attachments.
func proofImageURLs(attachments []entity.Attachment, maxSize int64) []string {
	var urls []string
	for _, a := range attachments {
		if isValidImage(a, maxSize) {
			urls = append(urls, a.URL)
		}
	}
	return urls
}
