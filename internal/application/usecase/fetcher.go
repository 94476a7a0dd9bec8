package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/domain/repository"
)

// BuildCostQuery monta a consulta agrupada por [group1, group2] com o filtro tipado.
func BuildCostQuery(
	window entity.TimeWindow,
	cfg entity.ReportConfig,
	group1, group2 entity.DimensionQuery,
	regions []string,
) entity.CostQuery {
	return entity.CostQuery{
		Window:      window,
		Granularity: cfg.Granularity,
		GroupBy:     [2]entity.DimensionQuery{group1, group2},
		Metric:      cfg.CostType,
		Filter:      entity.BuildFilter(regions, cfg.ExcludeTypes, cfg.IncludeTypes),
	}
}

// CostFetcher follows continuation tokens until the billing API has no more pages.
type CostFetcher struct {
	billing repository.BillingRepository
}

// NewCostFetcher cria um novo CostFetcher.
func NewCostFetcher(billing repository.BillingRepository) *CostFetcher {
	return &CostFetcher{billing: billing}
}

// Fetch concatenates the result blocks of every page in order. onPage, when
// not nil, receives the number of pages read so far.
func (f *CostFetcher) Fetch(ctx context.Context, query entity.CostQuery, onPage func(page int)) ([]entity.ResultBlock, error) {
	var results []entity.ResultBlock
	token := ""
	for page := 1; ; page++ {
		out, err := f.billing.GetCostAndUsage(ctx, query, token)
		if err != nil {
			return nil, fmt.Errorf("failed to get cost and usage (page %d): %w", page, err)
		}
		results = append(results, out.Results...)
		if onPage != nil {
			onPage(page)
		}
		if out.NextPageToken == "" {
			return results, nil
		}
		token = out.NextPageToken
	}
}
