package repository

import (
	"context"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
)

// DimensionValuesPage is one response of a dimension listing.
type DimensionValuesPage struct {
	Values        []entity.DimensionValue
	NextPageToken string
}

// TagValuesPage is one response of a tag value listing.
type TagValuesPage struct {
	Values        []string
	NextPageToken string
}

// BillingRepository defines the read operations consumed from the billing API.
type BillingRepository interface {
	GetDimensionValues(ctx context.Context, window entity.TimeWindow, dimension string) (DimensionValuesPage, error)
	GetTagValues(ctx context.Context, window entity.TimeWindow, tagKey string) (TagValuesPage, error)
	// GetCostAndUsage returns one page; an empty pageToken requests the first page.
	GetCostAndUsage(ctx context.Context, query entity.CostQuery, pageToken string) (entity.CostPage, error)
}

// RegionRepository lists the regions the account can address.
type RegionRepository interface {
	ListRegions(ctx context.Context) ([]string, error)
}

// ParameterRepository reads secrets such as the webhook URL.
type ParameterRepository interface {
	GetSecureString(ctx context.Context, name string) (string, error)
}

// ArchiveRepository stores rendered reports and returns their location.
type ArchiveRepository interface {
	PutReport(ctx context.Context, bucket, key string, body []byte, contentType string) (string, error)
}
