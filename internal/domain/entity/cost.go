package entity

import "github.com/shopspring/decimal"

// TotalColumn is the synthetic trailing column of a CostMatrix.
const TotalColumn = "TOTAL"

// GroupedCostRecord is one group of one result block: keys are (group1 value, group2 value).
type GroupedCostRecord struct {
	Keys   [2]string `json:"keys"`
	Amount string    `json:"amount"`
	Unit   string    `json:"unit"`
}

// ResultBlock contains the records of one time sub-period, as returned by one page.
// Pagination may split the same period across several blocks.
type ResultBlock struct {
	PeriodStart string              `json:"period_start"`
	PeriodEnd   string              `json:"period_end"`
	Estimated   bool                `json:"estimated,omitempty"`
	Records     []GroupedCostRecord `json:"records"`
}

// CostPage é uma página de GetCostAndUsage.
type CostPage struct {
	Results       []ResultBlock
	NextPageToken string
}

// CostQuery describes one grouped cost-and-usage query.
type CostQuery struct {
	Window      TimeWindow
	Granularity Granularity
	GroupBy     [2]DimensionQuery
	Metric      string
	Filter      *Filter
}

// CostRow is one row of a CostMatrix; the last cell is the row TOTAL.
type CostRow struct {
	Label string            `json:"label"`
	Cells []decimal.Decimal `json:"cells"`
}

// Total returns the trailing TOTAL cell.
func (r CostRow) Total() decimal.Decimal {
	if len(r.Cells) == 0 {
		return decimal.Zero
	}
	return r.Cells[len(r.Cells)-1]
}

// CostMatrix is the dense [group1] x [group2 + TOTAL] pivot of a window.
// Header[0] labels the row axis, Header[1:] labels Cells.
type CostMatrix struct {
	Header []string  `json:"header"`
	Rows   []CostRow `json:"rows"`
}

// Columns returns the group2 column labels, without the row label and TOTAL.
func (m CostMatrix) Columns() []string {
	if len(m.Header) < 2 {
		return nil
	}
	return m.Header[1 : len(m.Header)-1]
}

// GrandTotal sums every row TOTAL.
func (m CostMatrix) GrandTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, row := range m.Rows {
		sum = sum.Add(row.Total())
	}
	return sum
}

// FlatCostRow is one record of one period, without aggregation.
type FlatCostRow struct {
	PeriodStart string `json:"start"`
	PeriodEnd   string `json:"end"`
	Group1      string `json:"group1"`
	Group2      string `json:"group2"`
	Amount      string `json:"cost"`
}

// FlatTable is the un-pivoted projection of the fetched records.
type FlatTable struct {
	Header []string      `json:"header"`
	Rows   []FlatCostRow `json:"rows"`
}
