package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

type stubReports struct {
	result *ports.ReportResult
	err    error
	prompt string
	format domain.ReportFormat
}

func (g *stubReports) Generate(_ context.Context, prompt string, format domain.ReportFormat) (*ports.ReportResult, error) {
	g.prompt = prompt
	g.format = format
	return g.result, g.err
}

func TestReportScreenFormatPrettyPrints(t *testing.T) {
	gateway := &stubReports{result: &ports.ReportResult{
		Format: domain.ReportScreen,
		Data:   json.RawMessage(`{"titulo":"Ventas de agosto","total":12}`),
	}}
	svc := NewReportService(gateway, zerolog.Nop())

	out, err := svc.Generate(context.Background(), "ventas de agosto", domain.ReportScreen, "")
	require.NoError(t, err)
	assert.Equal(t, "ventas de agosto", gateway.prompt)
	assert.Contains(t, out.Text, "\"titulo\": \"Ventas de agosto\"")
	assert.Empty(t, out.SavedPath)
}

func TestReportScreenFormatNonJSONShownAsIs(t *testing.T) {
	gateway := &stubReports{result: &ports.ReportResult{
		Format: domain.ReportScreen,
		Data:   json.RawMessage("plain text summary"),
	}}
	svc := NewReportService(gateway, zerolog.Nop())

	out, err := svc.Generate(context.Background(), "resumen", domain.ReportScreen, "")
	require.NoError(t, err)
	assert.Equal(t, "plain text summary", out.Text)
}

func TestReportBinaryWritesRequestedPath(t *testing.T) {
	gateway := &stubReports{result: &ports.ReportResult{
		Format:      domain.ReportPDF,
		Blob:        []byte("%PDF-1.7 fake"),
		ContentType: "application/pdf",
		Filename:    "reporte.pdf",
	}}
	svc := NewReportService(gateway, zerolog.Nop())

	path := filepath.Join(t.TempDir(), "out", "ventas.pdf")
	out, err := svc.Generate(context.Background(), "ventas", domain.ReportPDF, path)
	require.NoError(t, err)
	assert.Equal(t, path, out.SavedPath)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), data)
}

func TestReportBinaryFallsBackToServerFilename(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	gateway := &stubReports{result: &ports.ReportResult{
		Format:      domain.ReportExcel,
		Blob:        []byte("xlsx-bytes"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Filename:    "reporte_ventas.xlsx",
	}}
	svc := NewReportService(gateway, zerolog.Nop())

	out, err := svc.Generate(context.Background(), "ventas", domain.ReportExcel, "")
	require.NoError(t, err)
	assert.Equal(t, "reporte_ventas.xlsx", out.SavedPath)
	_, err = os.Stat(filepath.Join(dir, "reporte_ventas.xlsx"))
	assert.NoError(t, err)
}

func TestReportGatewayErrorPassesThrough(t *testing.T) {
	gateway := &stubReports{err: errors.New("model unavailable")}
	svc := NewReportService(gateway, zerolog.Nop())

	_, err := svc.Generate(context.Background(), "ventas", domain.ReportScreen, "")
	assert.Error(t, err)
}
