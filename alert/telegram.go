package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/oarkflow/tradesignal/app/models"
)

const defaultBaseURL = "https://api.telegram.org"

// Notifier posts alert digests to a telegram chat over the bot API
type Notifier struct {
	Token   string
	ChatID  string
	BaseURL string

	httpClient *http.Client
}

// NewNotifier is constructor of Notifier
func NewNotifier(token, chatID string) *Notifier {
	return &Notifier{
		Token:      token,
		ChatID:     chatID,
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// ResolveToken reads the bot token from TELEGRAM_BOT_TOKEN, falling
// back to a terminal prompt
func ResolveToken() string {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		return token
	}
	println("Enter telegram bot token: ")
	token, err := term.ReadPassword(0)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(token))
}

// Digest renders the alerts as one plain-text telegram message
func Digest(alerts []models.AlertEvent) string {
	var builder strings.Builder
	builder.WriteString("Trade signals\n")
	for _, event := range alerts {
		builder.WriteString(fmt.Sprintf("%s %s @ %.2f [%s]", event.Action, event.Symbol, event.Price, event.Strategy))
		if event.Note != "" {
			builder.WriteString(" " + event.Note)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// Send posts one digest covering every alert. No alerts means no
// request at all.
func (n *Notifier) Send(ctx context.Context, alerts []models.AlertEvent) error {
	if len(alerts) == 0 {
		return nil
	}
	if n.Token == "" || n.ChatID == "" {
		return fmt.Errorf("telegram token and chat id are required")
	}

	data, err := json.Marshal(&sendMessageRequest{ChatID: n.ChatID, Text: Digest(alerts)})
	if err != nil {
		return err
	}

	baseURL := n.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", baseURL, n.Token)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := n.client().Do(request)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		return fmt.Errorf("telegram API returned status %d", response.StatusCode)
	}

	var payload sendMessageResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode telegram response: %w", err)
	}
	if !payload.OK {
		return fmt.Errorf("telegram rejected message: %s", payload.Description)
	}
	return nil
}

func (n *Notifier) client() *http.Client {
	if n.httpClient == nil {
		return http.DefaultClient
	}
	return n.httpClient
}
