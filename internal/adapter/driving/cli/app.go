package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/diillson/aws-costbot-go/internal/application/usecase"
	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/domain/repository"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
	"github.com/diillson/aws-costbot-go/pkg/version"
	"github.com/spf13/cobra"
)

// UseCaseFactory builds the report use case once the arguments are known,
// since the credentials depend on --assume-role.
type UseCaseFactory func(ctx context.Context, args *types.CLIArgs) (*usecase.ReportUseCase, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	factory    UseCaseFactory
	version    string
	bannerOut  io.Writer
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
		bannerOut:  os.Stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "aws-costbot",
		Short: "AWS Cost Explorer report grouped by two dimensions",
		Long: "Queries Cost Explorer for a time window, groups the costs by two of " +
			"account, accountname, service or a tag (tagname$) and prints a markdown " +
			"summary, a full breakdown or a CSV export. The report can also be sent " +
			"to a Microsoft Teams webhook, written to files or archived to S3.",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}
	rootCmd.SetVersionTemplate(`{{printf "aws-costbot version: %s\n" .Version}}`)

	flags := rootCmd.Flags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("start", "", "Start date (YYYY-MM-DD, inclusive) (default yesterday)")
	flags.String("end", "", "End date (YYYY-MM-DD, exclusive) (default start + days)")
	flags.Int("days", 1, "Window length in days when --start or --end is missing")
	flags.String("group1", "accountname", "Group by 'account', 'accountname', 'service' or 'tagname$'")
	flags.String("group2", "service", "Group by 'account', 'accountname', 'service' or 'tagname$'")
	flags.String("assume-role", "", "Optionally assume this role ARN to query Cost Explorer")
	flags.String("granularity", "daily", "Fetch costs daily or monthly")
	flags.StringSlice("exclude-types", append([]string(nil), entity.DefaultExcludeRecordTypes...), "Exclude these record types")
	flags.StringSlice("include-types", nil, "Only include these record types")
	flags.StringSliceP("regions", "r", nil, "Only include costs from these regions (comma-separated)")
	flags.StringP("output", "o", string(entity.OutputAuto), "Output: auto, summary, full, csv or flat")
	flags.String("title-prefix", entity.DefaultTitlePrefix, "Prefix of the report title")
	flags.String("cost-type", entity.DefaultCostType, "Cost Explorer metric, e.g. UnblendedCost, AmortizedCost")
	flags.String("currency", entity.DefaultExpectedCurrency, "Expected currency code of every amount")
	flags.Bool("exclude-zero", false, "Omit zero costs from the full breakdown")
	flags.BoolP("combine", "c", false, "Sum all group1 values into one section in the full breakdown")
	flags.Bool("raw-values", false, "Keep account IDs instead of account names")
	flags.String("webhook", "", "Send the report to this Microsoft Teams webhook")
	flags.String("webhook-parameter", "", "SSM parameter holding the Teams webhook URL")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("s3-bucket", "", "Archive the rendered report to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for archived reports")
	flags.BoolP("quiet", "q", false, "Hide the banner, progress and informational messages")

	app.rootCmd = rootCmd
	return app
}

// SetUseCaseFactory sets how the report use case is built.
func (app *CLIApp) SetUseCaseFactory(factory UseCaseFactory) {
	app.factory = factory
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI application with ctx.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	args := &types.CLIArgs{}

	args.ConfigFile, _ = flags.GetString("config-file")
	args.Start, _ = flags.GetString("start")
	args.End, _ = flags.GetString("end")
	args.Days, _ = flags.GetInt("days")
	args.Group1, _ = flags.GetString("group1")
	args.Group2, _ = flags.GetString("group2")
	args.AssumeRole, _ = flags.GetString("assume-role")
	args.Granularity, _ = flags.GetString("granularity")
	args.ExcludeTypes, _ = flags.GetStringSlice("exclude-types")
	args.IncludeTypes, _ = flags.GetStringSlice("include-types")
	args.Regions, _ = flags.GetStringSlice("regions")
	args.Output, _ = flags.GetString("output")
	args.TitlePrefix, _ = flags.GetString("title-prefix")
	args.CostType, _ = flags.GetString("cost-type")
	args.Currency, _ = flags.GetString("currency")
	args.ExcludeZero, _ = flags.GetBool("exclude-zero")
	args.Combine, _ = flags.GetBool("combine")
	args.RawValues, _ = flags.GetBool("raw-values")
	args.Webhook, _ = flags.GetString("webhook")
	args.WebhookParameter, _ = flags.GetString("webhook-parameter")
	args.ReportName, _ = flags.GetString("report-name")
	args.ReportType, _ = flags.GetStringSlice("report-type")
	args.Dir, _ = flags.GetString("dir")
	args.S3Bucket, _ = flags.GetString("s3-bucket")
	args.S3Prefix, _ = flags.GetString("s3-prefix")
	args.Quiet, _ = flags.GetBool("quiet")

	if args.ConfigFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, cfg, flags.Changed)
	}

	if args.ReportName != "" {
		dir, err := resolveDir(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = dir
	}
	return args, nil
}

func resolveDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

// mergeConfig aplica valores do arquivo apenas às flags não informadas na linha de comando.
func mergeConfig(args *types.CLIArgs, cfg *types.Config, changed func(name string) bool) {
	str := func(flag string, dst *string, v string) {
		if v != "" && !changed(flag) {
			*dst = v
		}
	}
	list := func(flag string, dst *[]string, v []string) {
		if v != nil && !changed(flag) {
			*dst = v
		}
	}
	flag := func(name string, dst *bool, v bool) {
		if v && !changed(name) {
			*dst = v
		}
	}

	str("group1", &args.Group1, cfg.Group1)
	str("group2", &args.Group2, cfg.Group2)
	str("assume-role", &args.AssumeRole, cfg.AssumeRole)
	str("granularity", &args.Granularity, cfg.Granularity)
	list("exclude-types", &args.ExcludeTypes, cfg.ExcludeTypes)
	list("include-types", &args.IncludeTypes, cfg.IncludeTypes)
	list("regions", &args.Regions, cfg.Regions)
	str("output", &args.Output, cfg.Output)
	str("title-prefix", &args.TitlePrefix, cfg.TitlePrefix)
	str("cost-type", &args.CostType, cfg.CostType)
	str("currency", &args.Currency, cfg.Currency)
	flag("exclude-zero", &args.ExcludeZero, cfg.ExcludeZero)
	flag("combine", &args.Combine, cfg.Combine)
	str("webhook", &args.Webhook, cfg.Webhook)
	str("webhook-parameter", &args.WebhookParameter, cfg.WebhookParameter)
	str("report-name", &args.ReportName, cfg.ReportName)
	list("report-type", &args.ReportType, cfg.ReportType)
	str("dir", &args.Dir, cfg.Dir)
	str("s3-bucket", &args.S3Bucket, cfg.S3Bucket)
	str("s3-prefix", &args.S3Prefix, cfg.S3Prefix)
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	if !cliArgs.Quiet {
		displayWelcomeBanner(app.bannerOut, app.version)
	}

	if app.factory == nil {
		return fmt.Errorf("report use case is not configured")
	}
	ctx := cmd.Context()
	reportUseCase, err := app.factory(ctx, cliArgs)
	if err != nil {
		return err
	}
	return reportUseCase.RunReport(ctx, cliArgs)
}
