package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// ConfigFromArgs builds the report configuration, falling back to the defaults
// for anything left empty.
func ConfigFromArgs(args *types.CLIArgs) (entity.ReportConfig, error) {
	cfg := entity.DefaultReportConfig()

	if args.Granularity != "" {
		g, err := entity.ParseGranularity(args.Granularity)
		if err != nil {
			return entity.ReportConfig{}, err
		}
		cfg.Granularity = g
	}
	if args.ExcludeTypes != nil {
		cfg.ExcludeTypes = cleanList(args.ExcludeTypes)
	}
	cfg.IncludeTypes = cleanList(args.IncludeTypes)
	if args.Currency != "" {
		cfg.ExpectedCurrency = strings.ToUpper(strings.TrimSpace(args.Currency))
	}
	if args.CostType != "" {
		cfg.CostType = strings.TrimSpace(args.CostType)
	}
	return cfg, nil
}

// RequestFromArgs parses every user supplied token. All configuration errors
// surface here, before any call to the billing API.
func RequestFromArgs(args *types.CLIArgs, now time.Time) (entity.ReportRequest, error) {
	mode, err := entity.ParseOutputMode(defaultString(args.Output, string(entity.OutputAuto)))
	if err != nil {
		return entity.ReportRequest{}, err
	}
	group1, err := entity.ParseGroupSpec(defaultString(args.Group1, "accountname"))
	if err != nil {
		return entity.ReportRequest{}, fmt.Errorf("group1: %w", err)
	}
	group2, err := entity.ParseGroupSpec(defaultString(args.Group2, "service"))
	if err != nil {
		return entity.ReportRequest{}, fmt.Errorf("group2: %w", err)
	}
	window, err := entity.ResolveTimeWindow(args.Start, args.End, args.Days, now)
	if err != nil {
		return entity.ReportRequest{}, err
	}

	return entity.ReportRequest{
		Window:           window,
		Group1:           group1,
		Group2:           group2,
		Regions:          cleanList(args.Regions),
		Mode:             mode,
		TitlePrefix:      defaultString(args.TitlePrefix, entity.DefaultTitlePrefix),
		Combine:          args.Combine,
		ExcludeZero:      args.ExcludeZero,
		SkipValueMapping: args.RawValues,
	}, nil
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// cleanList aceita tanto valores repetidos quanto separados por vírgula.
func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
