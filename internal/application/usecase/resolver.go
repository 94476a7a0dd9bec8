package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/domain/repository"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// accountDescriptionAttribute é o atributo de LINKED_ACCOUNT com o nome da conta.
const accountDescriptionAttribute = "description"

// ResolvedGroup is a grouping axis ready for querying and pivoting.
type ResolvedGroup struct {
	Spec     entity.GroupSpec
	Query    entity.DimensionQuery
	Universe entity.ValueUniverse
	// ValueMap is empty unless the axis renders display names.
	ValueMap entity.ValueMap
}

// GroupingResolver lists the values a grouping takes in a window.
type GroupingResolver struct {
	billing repository.BillingRepository
	console types.ConsoleInterface
}

// NewGroupingResolver cria um novo GroupingResolver.
func NewGroupingResolver(billing repository.BillingRepository, console types.ConsoleInterface) *GroupingResolver {
	return &GroupingResolver{billing: billing, console: console}
}

// Resolve issues exactly one listing call for the axis.
func (r *GroupingResolver) Resolve(ctx context.Context, spec entity.GroupSpec, window entity.TimeWindow) (ResolvedGroup, error) {
	resolved := ResolvedGroup{Spec: spec, Query: spec.Query(), ValueMap: entity.ValueMap{}}

	switch spec.Kind {
	case entity.GroupTag:
		page, err := r.billing.GetTagValues(ctx, window, spec.TagKey)
		if err != nil {
			return ResolvedGroup{}, fmt.Errorf("error listing values of tag %s: %w", spec.TagKey, err)
		}
		r.warnTruncated(spec, page.NextPageToken)

		values := make([]string, 0, len(page.Values))
		for _, v := range page.Values {
			values = append(values, spec.TagKey+entity.TagMarker+v)
		}
		resolved.Universe = entity.NewValueUniverse(values...)

	case entity.GroupAccount, entity.GroupAccountName, entity.GroupService:
		page, err := r.billing.GetDimensionValues(ctx, window, resolved.Query.Key)
		if err != nil {
			return ResolvedGroup{}, fmt.Errorf("error listing values of dimension %s: %w", resolved.Query.Key, err)
		}
		r.warnTruncated(spec, page.NextPageToken)

		values := make([]string, 0, len(page.Values))
		names := make(map[string]string, len(page.Values))
		for _, dv := range page.Values {
			values = append(values, dv.Value)
			names[dv.Value] = dv.Attributes[accountDescriptionAttribute]
		}
		resolved.Universe = entity.NewValueUniverse(values...)

		if spec.Kind == entity.GroupAccountName {
			m, err := entity.NewValueMap(names)
			if err != nil {
				return ResolvedGroup{}, fmt.Errorf("account names: %w", err)
			}
			resolved.ValueMap = m
		}

	default:
		return ResolvedGroup{}, fmt.Errorf("%w: %v", types.ErrInvalidGrouping, spec)
	}

	return resolved, nil
}

func (r *GroupingResolver) warnTruncated(spec entity.GroupSpec, token string) {
	if token != "" && r.console != nil {
		r.console.LogWarning("Listing of %s values was truncated by the billing API; some values may be missing", spec)
	}
}
