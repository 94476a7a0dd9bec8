package service

import (
	"math/rand"
	"testing"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellStrings(row entity.CostRow) []string {
	out := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		out[i] = c.StringFixed(7)
	}
	return out
}

func TestCostsToTable(t *testing.T) {
	m, err := CostsToTable(twoDayResults(), entity.GroupSpec{Kind: entity.GroupAccount}, accounts(), services(), "USD")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ACCOUNT",
		"AWS Lambda",
		"Amazon Elastic Compute Cloud - Compute",
		"Amazon Simple Storage Service",
		"TOTAL",
	}, m.Header)
	require.Len(t, m.Rows, 2)

	assert.Equal(t, account1, m.Rows[0].Label)
	assert.Equal(t, []string{"0.0000128", "0.0000000", "2.0000000", "2.0000128"}, cellStrings(m.Rows[0]))
	assert.Equal(t, account2, m.Rows[1].Label)
	assert.Equal(t, []string{"2.0000000", "20.0000000", "0.0000000", "22.0000000"}, cellStrings(m.Rows[1]))
}

func TestCostsToTable_DenseShapeAndTotals(t *testing.T) {
	rows := entity.NewValueUniverse(account1, account2, "000000000003")
	m, err := CostsToTable(twoDayResults(), accountNameSpec(), rows, services(), "USD")
	require.NoError(t, err)

	require.Len(t, m.Rows, 3)
	inputSum := decimal.Zero
	for _, block := range twoDayResults() {
		for _, r := range block.Records {
			inputSum = inputSum.Add(decimal.RequireFromString(r.Amount))
		}
	}

	for _, row := range m.Rows {
		require.Len(t, row.Cells, len(services())+1)
		sum := decimal.Zero
		for _, c := range row.Cells[:len(row.Cells)-1] {
			sum = sum.Add(c)
		}
		assert.True(t, sum.Equal(row.Total()), "row %s total %s != %s", row.Label, row.Total(), sum)
	}
	assert.True(t, m.Rows[2].Total().IsZero())
	assert.True(t, inputSum.Equal(m.GrandTotal()))
}

func TestCostsToTable_IgnoresKeysOutsideUniverse(t *testing.T) {
	blocks := []entity.ResultBlock{{
		PeriodStart: "2022-01-01",
		Records: []entity.GroupedCostRecord{
			record(account1, "AWS Lambda", "1"),
			record(account1, "Amazon Athena", "100"),
			record("999999999999", "AWS Lambda", "100"),
		},
	}}
	m, err := CostsToTable(blocks, accountNameSpec(), accounts(), services(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "1", m.GrandTotal().String())
}

func TestCostsToTable_OrderIndependent(t *testing.T) {
	expected, err := CostsToTable(twoDayResults(), accountNameSpec(), accounts(), services(), "USD")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		blocks := twoDayResults()
		rng.Shuffle(len(blocks), func(a, b int) { blocks[a], blocks[b] = blocks[b], blocks[a] })
		for _, block := range blocks {
			rng.Shuffle(len(block.Records), func(a, b int) {
				block.Records[a], block.Records[b] = block.Records[b], block.Records[a]
			})
		}

		got, err := CostsToTable(blocks, accountNameSpec(), accounts(), services(), "USD")
		require.NoError(t, err)
		require.Equal(t, expected.Header, got.Header)
		for r := range expected.Rows {
			assert.Equal(t, cellStrings(expected.Rows[r]), cellStrings(got.Rows[r]))
		}
	}
}

func TestCostsToTable_SplitPeriodIsSummed(t *testing.T) {
	blocks := []entity.ResultBlock{
		{PeriodStart: "2022-01-01", Records: []entity.GroupedCostRecord{record(account1, "AWS Lambda", "1.5")}},
		{PeriodStart: "2022-01-01", Records: []entity.GroupedCostRecord{record(account1, "AWS Lambda", "2.5")}},
	}
	m, err := CostsToTable(blocks, accountNameSpec(), entity.NewValueUniverse(account1), services(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "4", m.Rows[0].Total().String())
}

func TestCostsToTable_UnexpectedUnit(t *testing.T) {
	blocks := twoDayResults()
	blocks[1].Records[0].Unit = "EUR"

	_, err := CostsToTable(blocks, accountNameSpec(), accounts(), services(), "USD")
	require.ErrorIs(t, err, types.ErrUnexpectedUnit)
	assert.Contains(t, err.Error(), "EUR")
}

func TestCostsToTable_InvalidAmount(t *testing.T) {
	blocks := twoDayResults()
	blocks[0].Records[0].Amount = "n/a"

	_, err := CostsToTable(blocks, accountNameSpec(), accounts(), services(), "USD")
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestCostsToTable_NoResults(t *testing.T) {
	m, err := CostsToTable(nil, accountNameSpec(), accounts(), services(), "USD")
	require.NoError(t, err)
	require.Len(t, m.Rows, 2)
	assert.Equal(t, account1, m.Rows[0].Label)
	assert.True(t, m.GrandTotal().IsZero())
}

func TestCostsToTable_MappingCommutesWithAggregation(t *testing.T) {
	names := accountNames()

	mappedBlocks, err := ApplyValueMaps(twoDayResults(), names, nil)
	require.NoError(t, err)
	mappedRows, err := MapUniverse(accounts(), names)
	require.NoError(t, err)
	mapFirst, err := CostsToTable(mappedBlocks, accountNameSpec(), mappedRows, services(), "USD")
	require.NoError(t, err)

	pivotFirst, err := CostsToTable(twoDayResults(), accountNameSpec(), accounts(), services(), "USD")
	require.NoError(t, err)

	byLabel := map[string][]string{}
	for _, row := range pivotFirst.Rows {
		byLabel[names[row.Label]] = cellStrings(row)
	}
	for _, row := range mapFirst.Rows {
		assert.Equal(t, byLabel[row.Label], cellStrings(row), row.Label)
	}
}

func TestCostsToFlat(t *testing.T) {
	table, err := CostsToFlat(twoDayResults(), accountNameSpec(), serviceSpec(), "USD")
	require.NoError(t, err)

	assert.Equal(t, []string{"START", "END", "ACCOUNT_NAME", "SERVICE", "COST"}, table.Header)
	require.Len(t, table.Rows, 6)
	assert.Equal(t, entity.FlatCostRow{
		PeriodStart: "2022-01-01",
		PeriodEnd:   "2022-01-02",
		Group1:      account1,
		Group2:      "AWS Lambda",
		Amount:      "0.0000128",
	}, table.Rows[0])
	assert.Equal(t, "2022-01-02", table.Rows[5].PeriodStart)
}

func TestCostsToFlat_UnexpectedUnit(t *testing.T) {
	blocks := twoDayResults()
	blocks[0].Records[2].Unit = ""

	_, err := CostsToFlat(blocks, accountNameSpec(), serviceSpec(), "USD")
	require.ErrorIs(t, err, types.ErrUnexpectedUnit)
}

func TestSumRows(t *testing.T) {
	m, err := CostsToTable(twoDayResults(), accountNameSpec(), accounts(), services(), "USD")
	require.NoError(t, err)

	sum := SumRows(m)
	assert.Equal(t, m.Header, sum.Header)
	require.Len(t, sum.Rows, 1)
	assert.Equal(t, WildcardLabel, sum.Rows[0].Label)
	assert.Equal(t, []string{"2.0000128", "20.0000000", "2.0000000", "24.0000128"}, cellStrings(sum.Rows[0]))
}
