package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diillson/aws-costbot-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-costbot-go/internal/adapter/driven/config"
	"github.com/diillson/aws-costbot-go/internal/adapter/driven/export"
	"github.com/diillson/aws-costbot-go/internal/adapter/driven/notify"
	"github.com/diillson/aws-costbot-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-costbot-go/internal/application/usecase"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
	"github.com/diillson/aws-costbot-go/pkg/console"
	"github.com/diillson/aws-costbot-go/pkg/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, config.NewConfigRepository())
	app.SetUseCaseFactory(newReportUseCase)

	if err := app.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newReportUseCase monta os repositórios a partir dos argumentos já validados.
func newReportUseCase(ctx context.Context, args *types.CLIArgs) (*usecase.ReportUseCase, error) {
	cfg, err := usecase.ConfigFromArgs(args)
	if err != nil {
		return nil, err
	}

	session, err := aws.NewSession(ctx, args.AssumeRole)
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

	consoleImpl := console.NewConsole(console.WithQuiet(args.Quiet))
	uc := usecase.NewReportUseCase(billing, cfg, consoleImpl).
		WithExport(export.NewExportRepository(cfg.ExpectedCurrency)).
		WithDelivery(params, notify.NewTeamsNotifier(nil))

	if len(args.Regions) > 0 {
		regions, err := session.Regions()
		if err != nil {
			return nil, err
		}
		uc = uc.WithRegionValidation(regions)
	}
	if args.S3Bucket != "" {
		archive, err := session.Archive()
		if err != nil {
			return nil, err
		}
		uc = uc.WithArchive(archive)
	}
	return uc, nil
}
