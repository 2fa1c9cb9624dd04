package alert_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oarkflow/tradesignal/alert"
)

func TestDigest(t *testing.T) {
	assert := assert.New(t)

	digest := alert.Digest(sampleAlerts())
	assert.Contains(digest, "Trade signals\n")
	assert.Contains(digest, "BUY NABIL @ 640.00 [sma_cross_10_30]\n")
	assert.Contains(digest, "WATCH NICA @ 880.50 [rsi_reversal] entry 2 bars ago at 874.00\n")
}

func TestNotifierSend(t *testing.T) {
	assert := assert.New(t)

	var gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("application/json", r.Header.Get("Content-Type"))
		assert.NoError(json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	notifier := alert.NewNotifier("test-token", "12345")
	notifier.BaseURL = server.URL

	assert.NoError(notifier.Send(context.Background(), sampleAlerts()))
	assert.Equal("/bottest-token/sendMessage", gotPath)
	assert.Equal("12345", gotBody["chat_id"])
	assert.Contains(gotBody["text"], "BUY NABIL")
}

func TestNotifierSendRejected(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	notifier := alert.NewNotifier("test-token", "12345")
	notifier.BaseURL = server.URL

	err := notifier.Send(context.Background(), sampleAlerts())
	assert.ErrorContains(err, "chat not found")
}

func TestNotifierSendStatusError(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	notifier := alert.NewNotifier("bad-token", "12345")
	notifier.BaseURL = server.URL

	err := notifier.Send(context.Background(), sampleAlerts())
	assert.ErrorContains(err, "401")
}

func TestNotifierSendEmpty(t *testing.T) {
	assert := assert.New(t)

	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer server.Close()

	notifier := alert.NewNotifier("test-token", "12345")
	notifier.BaseURL = server.URL

	assert.NoError(notifier.Send(context.Background(), nil))
	assert.Zero(atomic.LoadInt64(&calls))
}

func TestNotifierSendMissingCredentials(t *testing.T) {
	assert := assert.New(t)

	notifier := alert.NewNotifier("", "")
	assert.Error(notifier.Send(context.Background(), sampleAlerts()))
}
