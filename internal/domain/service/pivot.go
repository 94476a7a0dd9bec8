package service

import (
	"fmt"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

// WildcardLabel labels the single row produced by SumRows.
const WildcardLabel = "*"

type keyPair [2]string

// CostsToTable folds the result blocks into a dense matrix with one row per
// group1 value and one column per group2 value plus TOTAL, summed over all periods.
// Records whose keys fall outside rows x columns are ignored.
func CostsToTable(
	blocks []entity.ResultBlock,
	group1 entity.GroupSpec,
	rows, columns entity.ValueUniverse,
	currency string,
) (entity.CostMatrix, error) {
	rowKeys := entity.NewValueUniverse(rows...)
	colKeys := entity.NewValueUniverse(columns...)

	header := make([]string, 0, len(colKeys)+2)
	header = append(header, group1.Header())
	header = append(header, colKeys...)
	header = append(header, entity.TotalColumn)

	matrix := entity.CostMatrix{Header: header, Rows: make([]entity.CostRow, len(rowKeys))}
	for i := range matrix.Rows {
		matrix.Rows[i].Cells = make([]decimal.Decimal, len(colKeys)+1)
	}
	total := len(colKeys)

	for _, block := range blocks {
		amounts, err := periodLookup(block, currency)
		if err != nil {
			return entity.CostMatrix{}, err
		}

		for i, rowKey := range rowKeys {
			row := &matrix.Rows[i]
			if row.Label == "" {
				row.Label = rowKey
			} else if row.Label != rowKey {
				return entity.CostMatrix{}, fmt.Errorf("%w: row %d was %q, period %s has %q",
					types.ErrRowIdentityDrift, i, row.Label, block.PeriodStart, rowKey)
			}

			for j, colKey := range colKeys {
				amount, ok := amounts[keyPair{rowKey, colKey}]
				if !ok {
					continue
				}
				row.Cells[j] = row.Cells[j].Add(amount)
				row.Cells[total] = row.Cells[total].Add(amount)
			}
		}
	}

	// Sem blocos, os rótulos ainda precisam existir.
	for i, rowKey := range rowKeys {
		matrix.Rows[i].Label = rowKey
	}
	return matrix, nil
}

// periodLookup indexes one block by key pair; duplicate pairs are summed.
func periodLookup(block entity.ResultBlock, currency string) (map[keyPair]decimal.Decimal, error) {
	amounts := make(map[keyPair]decimal.Decimal, len(block.Records))
	for _, record := range block.Records {
		amount, err := parseAmount(record, currency)
		if err != nil {
			return nil, fmt.Errorf("period %s: %w", block.PeriodStart, err)
		}
		k := keyPair(record.Keys)
		amounts[k] = amounts[k].Add(amount)
	}
	return amounts, nil
}

func parseAmount(record entity.GroupedCostRecord, currency string) (decimal.Decimal, error) {
	if record.Unit != currency {
		return decimal.Zero, fmt.Errorf("%w: %q (expected %q)", types.ErrUnexpectedUnit, record.Unit, currency)
	}
	amount, err := decimal.NewFromString(record.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q for %v", types.ErrInvalidAmount, record.Amount, record.Keys)
	}
	return amount, nil
}

// CostsToFlat emits one row per record, keeping period boundaries and API amounts.
func CostsToFlat(blocks []entity.ResultBlock, group1, group2 entity.GroupSpec, currency string) (entity.FlatTable, error) {
	table := entity.FlatTable{
		Header: []string{"START", "END", group1.Header(), group2.Header(), "COST"},
	}
	for _, block := range blocks {
		for _, record := range block.Records {
			if _, err := parseAmount(record, currency); err != nil {
				return entity.FlatTable{}, fmt.Errorf("period %s: %w", block.PeriodStart, err)
			}
			table.Rows = append(table.Rows, entity.FlatCostRow{
				PeriodStart: block.PeriodStart,
				PeriodEnd:   block.PeriodEnd,
				Group1:      record.Keys[0],
				Group2:      record.Keys[1],
				Amount:      record.Amount,
			})
		}
	}
	return table, nil
}

// SumRows collapses every row of m into a single wildcard row.
func SumRows(m entity.CostMatrix) entity.CostMatrix {
	if len(m.Header) < 2 {
		return entity.CostMatrix{Header: m.Header}
	}
	cells := make([]decimal.Decimal, len(m.Header)-1)
	for _, row := range m.Rows {
		for i, c := range row.Cells {
			cells[i] = cells[i].Add(c)
		}
	}
	return entity.CostMatrix{
		Header: m.Header,
		Rows:   []entity.CostRow{{Label: WildcardLabel, Cells: cells}},
	}
}
