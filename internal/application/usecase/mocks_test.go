package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
	"github.com/diillson/aws-costbot-go/internal/domain/repository"
	"github.com/diillson/aws-costbot-go/internal/shared/types"
	"github.com/stretchr/testify/mock"
)

type mockBilling struct {
	mock.Mock
}

func (m *mockBilling) GetDimensionValues(ctx context.Context, window entity.TimeWindow, dimension string) (repository.DimensionValuesPage, error) {
	args := m.Called(ctx, window, dimension)
	return args.Get(0).(repository.DimensionValuesPage), args.Error(1)
}

func (m *mockBilling) GetTagValues(ctx context.Context, window entity.TimeWindow, tagKey string) (repository.TagValuesPage, error) {
	args := m.Called(ctx, window, tagKey)
	return args.Get(0).(repository.TagValuesPage), args.Error(1)
}

func (m *mockBilling) GetCostAndUsage(ctx context.Context, query entity.CostQuery, pageToken string) (entity.CostPage, error) {
	args := m.Called(ctx, query, pageToken)
	return args.Get(0).(entity.CostPage), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Send(ctx context.Context, webhook, title, message string) error {
	return m.Called(ctx, webhook, title, message).Error(0)
}

type mockParameters struct {
	mock.Mock
}

func (m *mockParameters) GetSecureString(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

type mockArchive struct {
	mock.Mock
}

func (m *mockArchive) PutReport(ctx context.Context, bucket, key string, body []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucket, key, body, contentType)
	return args.String(0), args.Error(1)
}

type mockRegions struct {
	mock.Mock
}

func (m *mockRegions) ListRegions(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type mockExport struct {
	mock.Mock
}

func (m *mockExport) ExportToCSV(report entity.Report, filename string, outputDir string) (string, error) {
	args := m.Called(report, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExport) ExportToJSON(report entity.Report, filename string, outputDir string) (string, error) {
	args := m.Called(report, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExport) ExportToPDF(report entity.Report, filename string, outputDir string) (string, error) {
	args := m.Called(report, filename, outputDir)
	return args.String(0), args.Error(1)
}

// fakeConsole records stdout output and log lines separately.
type fakeConsole struct {
	out      strings.Builder
	warnings []string
	errors   []string
	infos    []string
}

func (c *fakeConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle { return fakeStatus{} }

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}
