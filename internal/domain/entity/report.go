package entity

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// OutputMode selects the renderer.
type OutputMode string

const (
	OutputAuto    OutputMode = "auto"
	OutputSummary OutputMode = "summary"
	OutputFull    OutputMode = "full"
	OutputCSV     OutputMode = "csv"
	OutputFlat    OutputMode = "flat"
)

// ParseOutputMode validates an output mode name.
func ParseOutputMode(s string) (OutputMode, error) {
	switch m := OutputMode(strings.ToLower(strings.TrimSpace(s))); m {
	case OutputAuto, OutputSummary, OutputFull, OutputCSV, OutputFlat:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", types.ErrInvalidOutputMode, s)
}

// IsPlain reports whether the mode produces a bare tabular export without a title.
func (m OutputMode) IsPlain() bool {
	return m == OutputCSV || m == OutputFlat
}

// Granularity is the billing API time bucketing.
type Granularity string

const (
	GranularityDaily   Granularity = "DAILY"
	GranularityMonthly Granularity = "MONTHLY"
)

// ParseGranularity accepts daily|monthly in any case.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToUpper(strings.TrimSpace(s))); g {
	case GranularityDaily, GranularityMonthly:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q (use daily or monthly)", types.ErrInvalidGranularity, s)
}

// Defaults used when neither flags nor config file override them.
const (
	DefaultCostType         = "UnblendedCost"
	DefaultExpectedCurrency = "USD"
	DefaultTitlePrefix      = "AWS Costs"
)

// DefaultExcludeRecordTypes are left out of every report unless overridden.
var DefaultExcludeRecordTypes = []string{"Credit", "Refund", "Tax"}

// ReportConfig holds the options shared by every report of one invocation.
type ReportConfig struct {
	Granularity      Granularity
	ExcludeTypes     []string
	IncludeTypes     []string
	ExpectedCurrency string
	CostType         string
}

// DefaultReportConfig returns {DAILY, [Credit Refund Tax], [], USD, UnblendedCost}.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Granularity:      GranularityDaily,
		ExcludeTypes:     append([]string(nil), DefaultExcludeRecordTypes...),
		ExpectedCurrency: DefaultExpectedCurrency,
		CostType:         DefaultCostType,
	}
}

// ReportRequest is one report generation.
type ReportRequest struct {
	Window      TimeWindow
	Group1      GroupSpec
	Group2      GroupSpec
	Regions     []string
	Mode        OutputMode
	TitlePrefix string

	// Combine collapses every group1 row into one before the full breakdown.
	Combine bool
	// ExcludeZero omits zero-cost columns from the full breakdown.
	ExcludeZero bool
	// SkipValueMapping keeps raw identifiers (account numbers) in the output.
	SkipValueMapping bool
}

// Report é o resultado de uma geração: título, corpo renderizado e os dados usados.
type Report struct {
	Title  string      `json:"title,omitempty"`
	Body   string      `json:"body"`
	Mode   OutputMode  `json:"mode"`
	Matrix *CostMatrix `json:"matrix,omitempty"`
	Flat   *FlatTable  `json:"flat,omitempty"`
}
