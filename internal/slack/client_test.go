package slack

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_FetchHistory_StopsAtPageCap(t *testing.T) {
	var pages int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		// Always claim there is more history, so only the cap can end the walk.
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"ok": true,
			"messages": [
				{"type": "message", "user": "U%03d", "text": "hello", "ts": "1736500000.%06d"}
			],
			"has_more": true,
			"response_metadata": {"next_cursor": "cursor-%d"}
		}`, pages, pages, pages)
	}))
	defer srv.Close()

	api := slackapi.New("test-token", slackapi.OptionAPIURL(srv.URL+"/"))
	client := NewClient(api, zap.NewNop())

	after := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	before := time.Date(2025, 1, 11, 3, 0, 0, 0, time.UTC)
	msgs, err := client.FetchHistory(context.Background(), "C001", after, before, 1000)
	require.NoError(t, err)

	assert.Len(t, msgs, maxHistoryPages)
	assert.Equal(t, maxHistoryPages, pages)
}

func TestClient_FetchHistory_StopsWhenExhausted(t *testing.T) {
	var pages int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"ok": true,
			"messages": [
				{"type": "message", "user": "U001", "text": "hello", "ts": "1736500000.000100"}
			],
			"has_more": false
		}`)
	}))
	defer srv.Close()

	api := slackapi.New("test-token", slackapi.OptionAPIURL(srv.URL+"/"))
	client := NewClient(api, zap.NewNop())

	after := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	before := time.Date(2025, 1, 11, 3, 0, 0, 0, time.UTC)
	msgs, err := client.FetchHistory(context.Background(), "C001", after, before, 1000)
	require.NoError(t, err)

	assert.Len(t, msgs, 1)
	assert.Equal(t, 1, pages)
}
