package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/domain/repository"
	"github.com/diillson/aws-costbot-go/internal/domain/service"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// Region values Cost Explorer reports that are not EC2 regions.
var nonRegionalValues = []string{"global", "NoRegion"}

const defaultArchiveName = "aws-costs"

// ReportUseCase orquestra resolução, busca, mapeamento, pivot e formatação.
type ReportUseCase struct {
	config   entity.ReportConfig
	resolver *GroupingResolver
	fetcher  *CostFetcher
	console  types.ConsoleInterface

	exportRepo repository.ExportRepository
	archive    repository.ArchiveRepository
	regions    repository.RegionRepository
	params     repository.ParameterRepository
	notifier   repository.NotifierRepository

	now func() time.Time
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	billing repository.BillingRepository,
	config entity.ReportConfig,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		config:   config,
		resolver: NewGroupingResolver(billing, console),
		fetcher:  NewCostFetcher(billing),
		console:  console,
		now:      time.Now,
	}
}

// WithExport enables writing report files.
func (uc *ReportUseCase) WithExport(exportRepo repository.ExportRepository) *ReportUseCase {
	uc.exportRepo = exportRepo
	return uc
}

// WithArchive enables uploading the rendered report.
func (uc *ReportUseCase) WithArchive(archive repository.ArchiveRepository) *ReportUseCase {
	uc.archive = archive
	return uc
}

// WithRegionValidation checks region filters against the regions the account can address.
func (uc *ReportUseCase) WithRegionValidation(regions repository.RegionRepository) *ReportUseCase {
	uc.regions = regions
	return uc
}

// WithDelivery enables sending the report to a webhook.
func (uc *ReportUseCase) WithDelivery(params repository.ParameterRepository, notifier repository.NotifierRepository) *ReportUseCase {
	uc.params = params
	uc.notifier = notifier
	return uc
}

// Config returns the configuration the use case was built with.
func (uc *ReportUseCase) Config() entity.ReportConfig {
	return uc.config
}

func validateRequest(req entity.ReportRequest) error {
	if _, err := entity.ParseOutputMode(string(req.Mode)); err != nil {
		return err
	}
	for i, g := range []entity.GroupSpec{req.Group1, req.Group2} {
		if g.Kind < entity.GroupAccount || g.Kind > entity.GroupTag || (g.Kind == entity.GroupTag && g.TagKey == "") {
			return fmt.Errorf("group%d: %w", i+1, types.ErrInvalidGrouping)
		}
	}
	if !req.Window.Start.Before(req.Window.End) {
		return fmt.Errorf("%w: start %s must be before end %s",
			types.ErrInvalidWindow, req.Window.StartString(), req.Window.EndString())
	}
	return nil
}

// Generate runs one report: resolve both axes, fetch every page, apply the
// value maps and render the body for req.Mode.
func (uc *ReportUseCase) Generate(ctx context.Context, req entity.ReportRequest) (entity.Report, error) {
	if err := validateRequest(req); err != nil {
		return entity.Report{}, err
	}

	status := uc.console.Status(fmt.Sprintf("Resolving %s values...", req.Group1))
	defer status.Stop()

	group1, err := uc.resolver.Resolve(ctx, req.Group1, req.Window)
	if err != nil {
		return entity.Report{}, err
	}
	status.Update(fmt.Sprintf("Resolving %s values...", req.Group2))
	group2, err := uc.resolver.Resolve(ctx, req.Group2, req.Window)
	if err != nil {
		return entity.Report{}, err
	}

	status.Update("Fetching costs...")
	query := BuildCostQuery(req.Window, uc.config, group1.Query, group2.Query, req.Regions)
	blocks, err := uc.fetcher.Fetch(ctx, query, func(page int) {
		status.Update(fmt.Sprintf("Fetching costs (page %d)...", page))
	})
	if err != nil {
		return entity.Report{}, err
	}

	rows, columns := group1.Universe, group2.Universe
	if !req.SkipValueMapping {
		if blocks, err = service.ApplyValueMaps(blocks, group1.ValueMap, group2.ValueMap); err != nil {
			return entity.Report{}, err
		}
		if rows, err = service.MapUniverse(rows, group1.ValueMap); err != nil {
			return entity.Report{}, fmt.Errorf("group1: %w", err)
		}
		if columns, err = service.MapUniverse(columns, group2.ValueMap); err != nil {
			return entity.Report{}, fmt.Errorf("group2: %w", err)
		}
	}

	report := entity.Report{
		Title: service.Title(req.TitlePrefix, req.Window, uc.config.CostType),
		Mode:  req.Mode,
	}
	currency := uc.config.ExpectedCurrency

	if req.Mode == entity.OutputFlat {
		flat, err := service.CostsToFlat(blocks, req.Group1, req.Group2, currency)
		if err != nil {
			return entity.Report{}, err
		}
		if report.Body, err = service.FlatToCSV(flat); err != nil {
			return entity.Report{}, err
		}
		report.Flat = &flat
		return report, nil
	}

	matrix, err := service.CostsToTable(blocks, req.Group1, rows, columns, currency)
	if err != nil {
		return entity.Report{}, err
	}
	if report.Body, err = uc.render(matrix, req); err != nil {
		return entity.Report{}, err
	}
	report.Matrix = &matrix
	return report, nil
}

func (uc *ReportUseCase) render(matrix entity.CostMatrix, req entity.ReportRequest) (string, error) {
	currency := uc.config.ExpectedCurrency
	opts := service.FullOptions{Combine: req.Combine, ExcludeZero: req.ExcludeZero}

	switch req.Mode {
	case entity.OutputSummary:
		return service.FormatSummary(matrix, req.Group1, currency)
	case entity.OutputFull:
		return service.FormatFull(matrix, req.Group2, opts)
	case entity.OutputCSV:
		return service.MatrixToCSV(matrix)
	case entity.OutputAuto:
		summary, err := service.FormatSummary(matrix, req.Group1, currency)
		if err != nil {
			return "", err
		}
		// Mensagens do Teams têm tamanho limitado: o detalhamento só entra
		// quando um dos eixos tem um único valor.
		if len(matrix.Rows) != 1 && len(matrix.Columns()) != 1 {
			return summary, nil
		}
		full, err := service.FormatFull(matrix, req.Group2, opts)
		if err != nil {
			return "", err
		}
		return summary + service.MessageSeparator + full, nil
	}
	return "", fmt.Errorf("%w: %q", types.ErrInvalidOutputMode, req.Mode)
}

// CreateMessage generates a titled markdown (or csv) message. Flat output is
// only available through CreatePlainOutput.
func (uc *ReportUseCase) CreateMessage(ctx context.Context, req entity.ReportRequest) (entity.Report, error) {
	if req.Mode == entity.OutputFlat {
		return entity.Report{}, fmt.Errorf("%w: %q is only available as plain output", types.ErrInvalidOutputMode, req.Mode)
	}
	return uc.Generate(ctx, req)
}

// CreatePlainOutput generates the csv or flat export without a title.
func (uc *ReportUseCase) CreatePlainOutput(ctx context.Context, req entity.ReportRequest) (string, error) {
	if !req.Mode.IsPlain() {
		return "", fmt.Errorf("%w: %q for plain output (use csv or flat)", types.ErrInvalidOutputMode, req.Mode)
	}
	report, err := uc.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return report.Body, nil
}

// RunReport is the command line flow: print the title (except for plain
// output) and body to stdout, then write files, archive and deliver as requested.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	req, err := RequestFromArgs(args, uc.now())
	if err != nil {
		return err
	}
	if err := uc.ValidateRegions(ctx, req.Regions); err != nil {
		return err
	}

	var report entity.Report
	if req.Mode.IsPlain() {
		report, err = uc.Generate(ctx, req)
	} else {
		report, err = uc.CreateMessage(ctx, req)
	}
	if err != nil {
		return err
	}

	if !req.Mode.IsPlain() {
		uc.console.Println(report.Title)
	}
	uc.console.Println(report.Body)

	uc.exportReport(report, args)

	if args.S3Bucket != "" {
		location, err := uc.ArchiveReport(ctx, report, req.Window, args.S3Bucket, args.S3Prefix, args.ReportName)
		if err != nil {
			return err
		}
		uc.console.LogSuccess("Report archived to %s", location)
	}

	if args.Webhook != "" || args.WebhookParameter != "" {
		if err := uc.Deliver(ctx, report, args.Webhook, args.WebhookParameter); err != nil {
			return err
		}
		uc.console.LogSuccess("Report sent to Teams")
	}
	return nil
}

// ValidateRegions rejects region filter values the account does not know about.
func (uc *ReportUseCase) ValidateRegions(ctx context.Context, regions []string) error {
	if len(regions) == 0 || uc.regions == nil {
		return nil
	}

	known, err := uc.regions.ListRegions(ctx)
	if err != nil {
		return fmt.Errorf("error listing regions: %w", err)
	}
	valid := make(map[string]struct{}, len(known)+len(nonRegionalValues))
	for _, r := range append(known, nonRegionalValues...) {
		valid[r] = struct{}{}
	}

	var unknown []string
	for _, r := range regions {
		if _, ok := valid[r]; !ok {
			unknown = append(unknown, r)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", types.ErrUnknownRegion, strings.Join(unknown, ", "))
	}
	return nil
}

// exportReport grava os arquivos pedidos; falhas são registradas mas não abortam.
func (uc *ReportUseCase) exportReport(report entity.Report, args *types.CLIArgs) {
	if uc.exportRepo == nil || args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}
	if report.Matrix == nil {
		uc.console.LogWarning("Report files are only written for pivoted output; skipping %s", report.Mode)
		return
	}

	for _, reportType := range cleanList(args.ReportType) {
		switch strings.ToLower(reportType) {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type %q (use csv, json or pdf)", reportType)
		}
	}
}

// ArchiveKey returns "<prefix>/<name>_<start>_<end>.<ext>"; csv and flat
// output use .csv, messages use .md.
func ArchiveKey(prefix, name string, window entity.TimeWindow, mode entity.OutputMode) string {
	if name == "" {
		name = defaultArchiveName
	}
	ext := "md"
	if mode.IsPlain() {
		ext = "csv"
	}
	file := fmt.Sprintf("%s_%s_%s.%s", name, window.StartString(), window.EndString(), ext)
	return path.Join(strings.Trim(prefix, "/"), file)
}

// ArchiveReport uploads the rendered body.
func (uc *ReportUseCase) ArchiveReport(
	ctx context.Context,
	report entity.Report,
	window entity.TimeWindow,
	bucket, prefix, name string,
) (string, error) {
	if uc.archive == nil {
		return "", fmt.Errorf("archive storage is not configured")
	}

	contentType := "text/markdown; charset=utf-8"
	body := report.Body
	if report.Mode.IsPlain() {
		contentType = "text/csv; charset=utf-8"
	} else {
		body = "# " + report.Title + "\n\n" + report.Body
	}

	key := ArchiveKey(prefix, name, window, report.Mode)
	location, err := uc.archive.PutReport(ctx, bucket, key, []byte(body), contentType)
	if err != nil {
		return "", fmt.Errorf("error archiving report to s3://%s/%s: %w", bucket, key, err)
	}
	return location, nil
}
