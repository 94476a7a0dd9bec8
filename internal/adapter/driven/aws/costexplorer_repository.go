package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/domain/repository"
)

// costExplorerAPI is the subset of the Cost Explorer client used here.
type costExplorerAPI interface {
	GetDimensionValues(ctx context.Context, params *costexplorer.GetDimensionValuesInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetDimensionValuesOutput, error)
	GetTags(ctx context.Context, params *costexplorer.GetTagsInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetTagsOutput, error)
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// CostExplorerRepository implementa o BillingRepository sobre o Cost Explorer.
type CostExplorerRepository struct {
	client costExplorerAPI
}

var _ repository.BillingRepository = (*CostExplorerRepository)(nil)

// NewCostExplorerRepository cria um novo CostExplorerRepository.
func NewCostExplorerRepository(client costExplorerAPI) *CostExplorerRepository {
	return &CostExplorerRepository{client: client}
}

func dateInterval(w entity.TimeWindow) *ceTypes.DateInterval {
	return &ceTypes.DateInterval{
		Start: aws.String(w.StartString()),
		End:   aws.String(w.EndString()),
	}
}

// GetDimensionValues lists the values of one dimension in the window.
func (r *CostExplorerRepository) GetDimensionValues(ctx context.Context, window entity.TimeWindow, dimension string) (repository.DimensionValuesPage, error) {
	out, err := r.client.GetDimensionValues(ctx, &costexplorer.GetDimensionValuesInput{
		TimePeriod: dateInterval(window),
		Dimension:  ceTypes.Dimension(dimension),
	})
	if err != nil {
		return repository.DimensionValuesPage{}, err
	}

	page := repository.DimensionValuesPage{
		Values:        make([]entity.DimensionValue, 0, len(out.DimensionValues)),
		NextPageToken: aws.ToString(out.NextPageToken),
	}
	for _, dv := range out.DimensionValues {
		page.Values = append(page.Values, entity.DimensionValue{
			Value:      aws.ToString(dv.Value),
			Attributes: dv.Attributes,
		})
	}
	return page, nil
}

// GetTagValues lists the values of one tag key in the window.
func (r *CostExplorerRepository) GetTagValues(ctx context.Context, window entity.TimeWindow, tagKey string) (repository.TagValuesPage, error) {
	out, err := r.client.GetTags(ctx, &costexplorer.GetTagsInput{
		TimePeriod: dateInterval(window),
		TagKey:     aws.String(tagKey),
	})
	if err != nil {
		return repository.TagValuesPage{}, err
	}
	return repository.TagValuesPage{
		Values:        out.Tags,
		NextPageToken: aws.ToString(out.NextPageToken),
	}, nil
}

// GetCostAndUsage fetches one page of grouped costs.
func (r *CostExplorerRepository) GetCostAndUsage(ctx context.Context, query entity.CostQuery, pageToken string) (entity.CostPage, error) {
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod:  dateInterval(query.Window),
		Granularity: ceTypes.Granularity(query.Granularity),
		Metrics:     []string{query.Metric},
		GroupBy:     groupDefinitions(query.GroupBy),
		Filter:      toExpression(query.Filter),
	}
	if pageToken != "" {
		input.NextPageToken = aws.String(pageToken)
	}

	out, err := r.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return entity.CostPage{}, err
	}

	page := entity.CostPage{NextPageToken: aws.ToString(out.NextPageToken)}
	for _, result := range out.ResultsByTime {
		block, err := toResultBlock(result, query.Metric)
		if err != nil {
			return entity.CostPage{}, err
		}
		page.Results = append(page.Results, block)
	}
	return page, nil
}

func groupDefinitions(groupBy [2]entity.DimensionQuery) []ceTypes.GroupDefinition {
	defs := make([]ceTypes.GroupDefinition, 0, len(groupBy))
	for _, g := range groupBy {
		defs = append(defs, ceTypes.GroupDefinition{
			Type: ceTypes.GroupDefinitionType(g.Kind),
			Key:  aws.String(g.Key),
		})
	}
	return defs
}

// toExpression converte o filtro tipado na árvore And/Not do Cost Explorer.
func toExpression(f *entity.Filter) *ceTypes.Expression {
	if f == nil {
		return nil
	}

	switch f.Kind {
	case entity.FilterRegion:
		return &ceTypes.Expression{Dimensions: &ceTypes.DimensionValues{
			Key:    ceTypes.DimensionRegion,
			Values: f.Values,
		}}
	case entity.FilterIncludeRecordTypes:
		return &ceTypes.Expression{Dimensions: &ceTypes.DimensionValues{
			Key:    ceTypes.DimensionRecordType,
			Values: f.Values,
		}}
	case entity.FilterExcludeRecordTypes:
		return &ceTypes.Expression{Not: &ceTypes.Expression{Dimensions: &ceTypes.DimensionValues{
			Key:    ceTypes.DimensionRecordType,
			Values: f.Values,
		}}}
	case entity.FilterAnd:
		and := make([]ceTypes.Expression, 0, len(f.Clauses))
		for i := range f.Clauses {
			if e := toExpression(&f.Clauses[i]); e != nil {
				and = append(and, *e)
			}
		}
		return &ceTypes.Expression{And: and}
	}
	return nil
}

func toResultBlock(result ceTypes.ResultByTime, metric string) (entity.ResultBlock, error) {
	block := entity.ResultBlock{Estimated: result.Estimated}
	if result.TimePeriod != nil {
		block.PeriodStart = aws.ToString(result.TimePeriod.Start)
		block.PeriodEnd = aws.ToString(result.TimePeriod.End)
	}

	for _, group := range result.Groups {
		if len(group.Keys) != 2 {
			return entity.ResultBlock{}, fmt.Errorf("period %s: expected 2 group keys, got %v", block.PeriodStart, group.Keys)
		}
		value, ok := group.Metrics[metric]
		if !ok {
			return entity.ResultBlock{}, fmt.Errorf("period %s: metric %s missing for %v", block.PeriodStart, metric, group.Keys)
		}
		block.Records = append(block.Records, entity.GroupedCostRecord{
			Keys:   [2]string{group.Keys[0], group.Keys[1]},
			Amount: aws.ToString(value.Amount),
			Unit:   aws.ToString(value.Unit),
		})
	}
	return block, nil
}
