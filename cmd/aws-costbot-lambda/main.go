package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/diillson/aws-costbot-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-costbot-go/internal/adapter/driven/notify"
	"github.com/diillson/aws-costbot-go/internal/adapter/driving/lambda"
	"github.com/diillson/aws-costbot-go/internal/application/usecase"
	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/pkg/console"
)

func main() {
	handler := lambda.NewHandler(lambda.SettingsFromEnv(nil), newReportUseCase)
	awslambda.Start(handler.Handle)
}

func newReportUseCase(ctx context.Context, assumeRole string) (*usecase.ReportUseCase, error) {
	session, err := aws.NewSession(ctx, assumeRole)
	if err != nil {
		return nil, err
	}
	billing, err := session.CostExplorer()
	if err != nil {
		return nil, err
	}
	params, err := session.Parameters()
	if err != nil {
		return nil, err
	}

	// CloudWatch não renderiza spinners.
	consoleImpl := console.NewConsole(console.WithoutSpinner())
	return usecase.NewReportUseCase(billing, entity.DefaultReportConfig(), consoleImpl).
		WithDelivery(params, notify.NewTeamsNotifier(nil)), nil
}
