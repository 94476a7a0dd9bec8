package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// MessageSeparator joins the summary and the full breakdown in auto mode.
const MessageSeparator = "\n---\n"

// FullOptions controls FormatFull.
type FullOptions struct {
	Combine     bool
	ExcludeZero bool
}

func assertHeader(m entity.CostMatrix) error {
	if len(m.Header) < 2 || m.Header[len(m.Header)-1] != entity.TotalColumn {
		return fmt.Errorf("%w: %v", types.ErrUnexpectedHeader, m.Header)
	}
	return nil
}

// FormatSummary renders one markdown line per row, highest TOTAL first,
// preceded by the grand total. Values are rounded only when rendered.
func FormatSummary(m entity.CostMatrix, group1 entity.GroupSpec, currency string) (string, error) {
	if err := assertHeader(m); err != nil {
		return "", err
	}

	rows := append([]entity.CostRow(nil), m.Rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total().GreaterThan(rows[j].Total())
	})

	var b strings.Builder
	fmt.Fprintf(&b, "## %s Totals: %s %s\n\n", group1.DisplayName(), currency, m.GrandTotal().StringFixed(2))
	fmt.Fprintf(&b, "|%s|Total|\n|-|-|\n", group1.DisplayName())
	for _, row := range rows {
		fmt.Fprintf(&b, "|%s|%s|\n", row.Label, row.Total().StringFixed(2))
	}
	return b.String(), nil
}

// FormatFull renders one markdown section per row (ordered by label) listing
// every group2 column except TOTAL.
func FormatFull(m entity.CostMatrix, group2 entity.GroupSpec, opts FullOptions) (string, error) {
	if err := assertHeader(m); err != nil {
		return "", err
	}

	var rows []entity.CostRow
	if opts.Combine {
		rows = SumRows(m).Rows
	} else {
		rows = append(rows, m.Rows...)
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	}

	columns := m.Columns()
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "## %s\n\n", row.Label)
		fmt.Fprintf(&b, "|%s|Cost|\n|-|-|\n", group2.DisplayName())
		for i, column := range columns {
			cost := row.Cells[i]
			if opts.ExcludeZero && cost.IsZero() {
				continue
			}
			fmt.Fprintf(&b, "|%s|%s|\n", column, cost.StringFixed(2))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// MatrixToCSV writes the header followed by every row; cells keep the exact decimal sum.
func MatrixToCSV(m entity.CostMatrix) (string, error) {
	records := make([][]string, 0, len(m.Rows)+1)
	records = append(records, m.Header)
	for _, row := range m.Rows {
		record := make([]string, 0, len(row.Cells)+1)
		record = append(record, row.Label)
		for _, c := range row.Cells {
			record = append(record, c.String())
		}
		records = append(records, record)
	}
	return writeCSV(records)
}

// FlatToCSV writes the flat projection with the amounts exactly as returned by the API.
func FlatToCSV(t entity.FlatTable) (string, error) {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	for _, row := range t.Rows {
		records = append(records, []string{row.PeriodStart, row.PeriodEnd, row.Group1, row.Group2, row.Amount})
	}
	return writeCSV(records)
}

func writeCSV(records [][]string) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV: %w", err)
	}
	return buf.String(), nil
}
