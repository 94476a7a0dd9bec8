package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diillson/aws-costbot-go/internal/domain/repository"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
	"github.com/diillson/aws-costbot-go/pkg/version"
)

const defaultTimeout = 30 * time.Second

// teamsMessage é o payload aceito pelo conector de entrada do Teams.
// The "testformat" key is what the connector has always been sent.
type teamsMessage struct {
	Title      string `json:"title"`
	TextFormat string `json:"testformat"`
	Text       string `json:"text"`
}

// TeamsNotifier posts markdown messages to a Microsoft Teams webhook.
type TeamsNotifier struct {
	client *http.Client
}

var _ repository.NotifierRepository = (*TeamsNotifier)(nil)

// NewTeamsNotifier uses client, or a client with a 30s timeout when nil.
func NewTeamsNotifier(client *http.Client) *TeamsNotifier {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &TeamsNotifier{client: client}
}

// Send posts the message; any status other than 200 is a delivery failure.
func (n *TeamsNotifier) Send(ctx context.Context, webhook, title, message string) error {
	payload, err := json.Marshal(teamsMessage{Title: title, TextFormat: "markdown", Text: message})
	if err != nil {
		return fmt.Errorf("error encoding Teams message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhook, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrWebhookDelivery, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrWebhookDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		reason, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		detail := strings.TrimSpace(string(reason))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%w: %s (%d)", types.ErrWebhookDelivery, detail, resp.StatusCode)
	}
	return nil
}
