package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/diillson/aws-costbot-go/internal/application/usecase"
	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// Environment variables read by the function.
const (
	EnvWebhook          = "MS_TEAMS_WEBHOOK"
	EnvWebhookParameter = "MS_TEAMS_PARAMETER_STORE"
	EnvRoleARN          = "COST_EXPLORER_ROLE_ARN"
	EnvTitlePrefix      = "MS_TEAMS_TITLE_PREFIX"
	EnvGroup1           = "COSTBOT_GROUP1"
	EnvGroup2           = "COSTBOT_GROUP2"
	EnvOutput           = "COSTBOT_OUTPUT"
)

// Event é o payload do agendamento (EventBridge) ou de uma invocação manual.
type Event struct {
	Start  string `json:"start,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Group1 string `json:"group1,omitempty"`
	Group2 string `json:"group2,omitempty"`
}

// Response mirrors an API Gateway proxy response.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Settings is the function configuration.
type Settings struct {
	Webhook          string
	WebhookParameter string
	AssumeRole       string
	TitlePrefix      string
	Group1           string
	Group2           string
	Output           string
}

// SettingsFromEnv reads Settings with getenv (os.Getenv when nil).
func SettingsFromEnv(getenv func(string) string) Settings {
	if getenv == nil {
		getenv = os.Getenv
	}
	return Settings{
		Webhook:          getenv(EnvWebhook),
		WebhookParameter: getenv(EnvWebhookParameter),
		AssumeRole:       getenv(EnvRoleARN),
		TitlePrefix:      getenv(EnvTitlePrefix),
		Group1:           getenv(EnvGroup1),
		Group2:           getenv(EnvGroup2),
		Output:           getenv(EnvOutput),
	}
}

// UseCaseFactory builds the use case for the role to assume (empty for none).
type UseCaseFactory func(ctx context.Context, assumeRole string) (*usecase.ReportUseCase, error)

// Handler generates one report per invocation and sends it to Teams.
type Handler struct {
	settings Settings
	factory  UseCaseFactory
	now      func() time.Time
}

// NewHandler cria um novo Handler.
func NewHandler(settings Settings, factory UseCaseFactory) *Handler {
	return &Handler{settings: settings, factory: factory, now: time.Now}
}

// Args converts an event into report arguments: a one day window starting at
// event.Start (default yesterday); a tag replaces group2 with "<tag>$".
func (h *Handler) Args(event Event) *types.CLIArgs {
	args := &types.CLIArgs{
		Start:       event.Start,
		Days:        1,
		Group1:      firstNonEmpty(event.Group1, h.settings.Group1),
		Group2:      firstNonEmpty(event.Group2, h.settings.Group2),
		Output:      firstNonEmpty(h.settings.Output, string(entity.OutputAuto)),
		TitlePrefix: h.settings.TitlePrefix,
	}
	if event.Tag != "" {
		args.Group2 = event.Tag + entity.TagMarker
	}
	return args
}

// Handle runs one invocation.
func (h *Handler) Handle(ctx context.Context, event Event) (Response, error) {
	if h.settings.Webhook == "" && h.settings.WebhookParameter == "" {
		return Response{}, fmt.Errorf("%w: %s or %s must be set", types.ErrMissingWebhook, EnvWebhook, EnvWebhookParameter)
	}

	req, err := usecase.RequestFromArgs(h.Args(event), h.now())
	if err != nil {
		return Response{}, err
	}

	reportUseCase, err := h.factory(ctx, h.settings.AssumeRole)
	if err != nil {
		return Response{}, err
	}
	report, err := reportUseCase.CreateMessage(ctx, req)
	if err != nil {
		return Response{}, err
	}
	if err := reportUseCase.Deliver(ctx, report, h.settings.Webhook, h.settings.WebhookParameter); err != nil {
		return Response{}, err
	}

	body, err := json.Marshal(report.Body)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: 200, Body: string(body)}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
