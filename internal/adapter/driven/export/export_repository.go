package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/domain/repository"
	"github.com/diillson/aws-costbot-go/internal/domain/service"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	currency string
	now      func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
// currency labels the amounts in the PDF.
func NewExportRepository(currency string) repository.ExportRepository {
	return &ExportRepositoryImpl{currency: currency, now: time.Now}
}

func requireMatrix(report entity.Report) (entity.CostMatrix, error) {
	if report.Matrix == nil {
		return entity.CostMatrix{}, fmt.Errorf("report %q has no cost matrix to export", report.Title)
	}
	return *report.Matrix, nil
}

// ExportToCSV writes the pivoted matrix with the exact decimal sums.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.Report, filename, outputDir string) (string, error) {
	matrix, err := requireMatrix(report)
	if err != nil {
		return "", err
	}
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	content, err := service.MatrixToCSV(matrix)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputFilename, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

type jsonReport struct {
	Title      string             `json:"title"`
	Mode       entity.OutputMode  `json:"mode"`
	GrandTotal decimal.Decimal    `json:"grand_total"`
	Matrix     *entity.CostMatrix `json:"matrix"`
	Body       string             `json:"body"`
}

// ExportToJSON writes the title, grand total, matrix and rendered body.
func (r *ExportRepositoryImpl) ExportToJSON(report entity.Report, filename, outputDir string) (string, error) {
	matrix, err := requireMatrix(report)
	if err != nil {
		return "", err
	}
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	doc := jsonReport{
		Title:      report.Title,
		Mode:       report.Mode,
		GrandTotal: matrix.GrandTotal(),
		Matrix:     &matrix,
		Body:       report.Body,
	}
	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// ExportToPDF renders a totals page followed by one breakdown section per row.
func (r *ExportRepositoryImpl) ExportToPDF(report entity.Report, filename, outputDir string) (string, error) {
	matrix, err := requireMatrix(report)
	if err != nil {
		return "", err
	}
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	generated := r.now().Format("2006-01-02")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Generated by aws-costbot | %s", generated)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	tableRow := func(label, amount string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(150, 6, tr(truncate(label, 90)), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(amount), "", 1, "R", false, 0, "")
	}

	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  "+truncate(report.Title, 80)), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Total: %s %s", r.currency, matrix.GrandTotal().StringFixed(2))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	rows := append([]entity.CostRow(nil), matrix.Rows...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total().GreaterThan(rows[j].Total()) })

	sectionTitle(fmt.Sprintf("Totals by %s", strings.ToLower(matrix.Header[0])))
	for _, row := range rows {
		tableRow(row.Label, row.Total().StringFixed(2), false)
	}
	pdf.Ln(8)

	columns := matrix.Columns()
	for _, row := range rows {
		if row.Total().IsZero() {
			continue
		}
		sectionTitle(row.Label)
		for i, column := range columns {
			if row.Cells[i].IsZero() {
				continue
			}
			tableRow(column, row.Cells[i].StringFixed(2), false)
		}
		tableRow(entity.TotalColumn, row.Total().StringFixed(2), true)
		pdf.Ln(8)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", base, timestamp, ext)), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
