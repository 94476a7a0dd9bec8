package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// ResolveWebhook prefere a URL explícita; senão lê o parâmetro SecureString.
func (uc *ReportUseCase) ResolveWebhook(ctx context.Context, webhook, parameterName string) (string, error) {
	if webhook != "" {
		return webhook, nil
	}
	if parameterName == "" || uc.params == nil {
		return "", types.ErrMissingWebhook
	}

	value, err := uc.params.GetSecureString(ctx, parameterName)
	if err != nil {
		return "", fmt.Errorf("error reading webhook parameter %s: %w", parameterName, err)
	}
	if value == "" {
		return "", fmt.Errorf("%w: parameter %s is empty", types.ErrMissingWebhook, parameterName)
	}
	return value, nil
}

// Deliver sends the report title and body to the resolved webhook.
func (uc *ReportUseCase) Deliver(ctx context.Context, report entity.Report, webhook, parameterName string) error {
	if uc.notifier == nil {
		return fmt.Errorf("%w: no notifier configured", types.ErrWebhookDelivery)
	}
	url, err := uc.ResolveWebhook(ctx, webhook, parameterName)
	if err != nil {
		return err
	}
	return uc.notifier.Send(ctx, url, report.Title, report.Body)
}
