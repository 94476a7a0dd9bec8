package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diillson/aws-costbot-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamsNotifier_Send(t *testing.T) {
	var got map[string]string
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		contentType = r.Header.Get("Content-Type")
		assert.Contains(t, r.Header.Get("User-Agent"), "aws-costbot/")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := NewTeamsNotifier(server.Client()).Send(context.Background(), server.URL, "AWS Costs", "## Account Totals: USD 1.00\n")
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, map[string]string{
		"title":      "AWS Costs",
		"testformat": "markdown",
		"text":       "## Account Totals: USD 1.00\n",
	}, got)
}

func TestTeamsNotifier_NonOKStatus(t *testing.T) {
	tests := map[string]int{
		"bad request": http.StatusBadRequest,
		"accepted":    http.StatusAccepted,
		"server":      http.StatusInternalServerError,
	}
	for name, status := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte("Webhook message delivery failed"))
			}))
			defer server.Close()

			err := NewTeamsNotifier(nil).Send(context.Background(), server.URL, "t", "m")
			assert.ErrorIs(t, err, types.ErrWebhookDelivery)
			assert.ErrorContains(t, err, "Webhook message delivery failed")
		})
	}
}

func TestTeamsNotifier_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	err := NewTeamsNotifier(nil).Send(context.Background(), url, "t", "m")
	assert.ErrorIs(t, err, types.ErrWebhookDelivery)
}
