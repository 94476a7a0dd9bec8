package usecase

import (
	"testing"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/domain/repository"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	account1 = "000000000001"
	account2 = "000000000002"
)

func testWindow(t *testing.T) entity.TimeWindow {
	t.Helper()
	w, err := entity.ResolveTimeWindow("2022-01-01", "2022-01-03", 0, testNow)
	require.NoError(t, err)
	return w
}

func record(g1, g2, amount string) entity.GroupedCostRecord {
	return entity.GroupedCostRecord{Keys: [2]string{g1, g2}, Amount: amount, Unit: "USD"}
}

func accountListing(ids ...string) repository.DimensionValuesPage {
	names := map[string]string{account1: "researchers-1", account2: "researchers-2"}
	page := repository.DimensionValuesPage{}
	for _, id := range ids {
		page.Values = append(page.Values, entity.DimensionValue{
			Value:      id,
			Attributes: map[string]string{"description": names[id]},
		})
	}
	return page
}

func serviceListing(services ...string) repository.DimensionValuesPage {
	page := repository.DimensionValuesPage{}
	for _, s := range services {
		page.Values = append(page.Values, entity.DimensionValue{Value: s})
	}
	return page
}

// singleAccountBlocks: one account, three services, two daily periods.
func singleAccountBlocks() []entity.ResultBlock {
	return []entity.ResultBlock{
		{
			PeriodStart: "2022-01-01",
			PeriodEnd:   "2022-01-02",
			Records: []entity.GroupedCostRecord{
				record(account1, "Amazon EC2", "1.5"),
				record(account1, "Amazon S3", "0.25"),
			},
		},
		{
			PeriodStart: "2022-01-02",
			PeriodEnd:   "2022-01-03",
			Records: []entity.GroupedCostRecord{
				record(account1, "Amazon EC2", "2.0"),
				record(account1, "AWS Lambda", "0.004"),
			},
		},
	}
}

func twoAccountBlocks() []entity.ResultBlock {
	return []entity.ResultBlock{
		{
			PeriodStart: "2022-01-01",
			PeriodEnd:   "2022-01-02",
			Records: []entity.GroupedCostRecord{
				record(account1, "Amazon EC2", "10.004"),
				record(account2, "Amazon S3", "25.111"),
			},
		},
	}
}

// expectAccountService wires the listings and a single cost page for an
// accountname x service report.
func expectAccountService(billing *mockBilling, accounts []string, services []string, blocks []entity.ResultBlock) {
	billing.On("GetDimensionValues", mock.Anything, mock.Anything, entity.DimensionLinkedAccount).
		Return(accountListing(accounts...), nil).Once()
	billing.On("GetDimensionValues", mock.Anything, mock.Anything, entity.DimensionService).
		Return(serviceListing(services...), nil).Once()
	billing.On("GetCostAndUsage", mock.Anything, mock.Anything, "").
		Return(entity.CostPage{Results: blocks}, nil).Once()
}
