package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2022, 3, 2, 7, 30, 5, 0, time.UTC)

func newRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{currency: "USD", now: func() time.Time { return fixedNow }}
}

func testReport() entity.Report {
	d := decimal.RequireFromString
	return entity.Report{
		Title: "AWS Costs 2022-03-01 (Tuesday) UnblendedCost",
		Body:  "## Account Totals: USD 35.12\n",
		Mode:  entity.OutputSummary,
		Matrix: &entity.CostMatrix{
			Header: []string{"ACCOUNT_NAME", "Amazon EC2", "Amazon S3", "TOTAL"},
			Rows: []entity.CostRow{
				{Label: "researchers-1", Cells: []decimal.Decimal{d("10.004"), d("0"), d("10.004")}},
				{Label: "researchers-2", Cells: []decimal.Decimal{d("0"), d("25.111"), d("25.111")}},
			},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	path, err := newRepo().ExportToCSV(testReport(), "costs", dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "costs_20220302_073005.csv"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ACCOUNT_NAME,Amazon EC2,Amazon S3,TOTAL\n"+
		"researchers-1,10.004,0,10.004\n"+
		"researchers-2,0,25.111,25.111\n", string(content))
}

func TestExportToJSON(t *testing.T) {
	path, err := newRepo().ExportToJSON(testReport(), "costs", t.TempDir())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Title      string `json:"title"`
		Mode       string `json:"mode"`
		GrandTotal string `json:"grand_total"`
		Matrix     struct {
			Header []string `json:"header"`
			Rows   []struct {
				Label string   `json:"label"`
				Cells []string `json:"cells"`
			} `json:"rows"`
		} `json:"matrix"`
	}
	require.NoError(t, json.Unmarshal(content, &doc))
	assert.Equal(t, "summary", doc.Mode)
	assert.Equal(t, "35.115", doc.GrandTotal)
	assert.Equal(t, []string{"ACCOUNT_NAME", "Amazon EC2", "Amazon S3", "TOTAL"}, doc.Matrix.Header)
	require.Len(t, doc.Matrix.Rows, 2)
	assert.Equal(t, []string{"0", "25.111", "25.111"}, doc.Matrix.Rows[1].Cells)
}

func TestExportToPDF(t *testing.T) {
	path, err := newRepo().ExportToPDF(testReport(), "costs", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".pdf", filepath.Ext(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(content) > 4 && string(content[:4]) == "%PDF")
}

func TestExport_RequiresMatrix(t *testing.T) {
	repo := newRepo()
	flat := entity.Report{Title: "flat", Mode: entity.OutputFlat}

	_, err := repo.ExportToCSV(flat, "costs", t.TempDir())
	assert.ErrorContains(t, err, "no cost matrix")
	_, err = repo.ExportToJSON(flat, "costs", t.TempDir())
	assert.Error(t, err)
	_, err = repo.ExportToPDF(flat, "costs", t.TempDir())
	assert.Error(t, err)
}
