package types

import "errors"

// Erros de configuração: detectados antes de qualquer chamada de rede.
var (
	ErrInvalidGrouping    = errors.New("invalid grouping")
	ErrInvalidOutputMode  = errors.New("invalid output mode")
	ErrInvalidGranularity = errors.New("invalid granularity")
	ErrInvalidWindow      = errors.New("invalid time window")
	ErrUnknownRegion      = errors.New("unknown region")
	ErrMissingWebhook     = errors.New("a webhook URL or a parameter store path must be set")
)

// Inconsistências de dados: abortam o relatório inteiro.
var (
	ErrUnexpectedUnit       = errors.New("unexpected unit")
	ErrInvalidAmount        = errors.New("invalid cost amount")
	ErrRowIdentityDrift     = errors.New("row identity changed between periods")
	ErrValueMapMiss         = errors.New("value has no mapping")
	ErrNonInjectiveValueMap = errors.New("value map is not injective")
	ErrUnexpectedHeader     = errors.New("unexpected header")
)

// ErrWebhookDelivery is returned when the notification sink answers with a non-success status.
var ErrWebhookDelivery = errors.New("failed to send message to Teams")
