package service

import "github.com/diillson/aws-costbot-go/internal/domain/entity"

const (
	account1 = "000000000001"
	account2 = "000000000002"
)

func record(g1, g2, amount string) entity.GroupedCostRecord {
	return entity.GroupedCostRecord{Keys: [2]string{g1, g2}, Amount: amount, Unit: "USD"}
}

// twoDayResults mirrors a DAILY query over two accounts and three services.
func twoDayResults() []entity.ResultBlock {
	return []entity.ResultBlock{
		{
			PeriodStart: "2022-01-01",
			PeriodEnd:   "2022-01-02",
			Records: []entity.GroupedCostRecord{
				record(account1, "AWS Lambda", "0.0000128"),
				record(account1, "Amazon Simple Storage Service", "1.25"),
				record(account2, "Amazon Elastic Compute Cloud - Compute", "10.5"),
			},
		},
		{
			PeriodStart: "2022-01-02",
			PeriodEnd:   "2022-01-03",
			Records: []entity.GroupedCostRecord{
				record(account1, "Amazon Simple Storage Service", "0.75"),
				record(account2, "Amazon Elastic Compute Cloud - Compute", "9.5"),
				record(account2, "AWS Lambda", "2"),
			},
		},
	}
}

func services() entity.ValueUniverse {
	return entity.NewValueUniverse(
		"Amazon Simple Storage Service",
		"AWS Lambda",
		"Amazon Elastic Compute Cloud - Compute",
	)
}

func accounts() entity.ValueUniverse {
	return entity.NewValueUniverse(account2, account1)
}

func accountNames() entity.ValueMap {
	return entity.ValueMap{account1: "researchers-1", account2: "researchers-2"}
}

func accountNameSpec() entity.GroupSpec { return entity.GroupSpec{Kind: entity.GroupAccountName} }

func serviceSpec() entity.GroupSpec { return entity.GroupSpec{Kind: entity.GroupService} }
