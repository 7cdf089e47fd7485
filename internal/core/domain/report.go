package domain

import "fmt"

// ReportFormat is the caller-supplied hint for /api/reportes/generar/. The
// values are the ones the backend's interpreter understands.
type ReportFormat string

const (
	ReportScreen ReportFormat = "pantalla"
	ReportPDF    ReportFormat = "pdf"
	ReportExcel  ReportFormat = "excel"
)

// ParseReportFormat accepts the backend values plus common English aliases.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch s {
	case "pantalla", "screen", "":
		return ReportScreen, nil
	case "pdf":
		return ReportPDF, nil
	case "excel", "xlsx":
		return ReportExcel, nil
	}
	return "", fmt.Errorf("unknown report format %q (want pantalla, pdf or excel)", s)
}

// Accept is the content type requested from the backend for this format.
func (f ReportFormat) Accept() string {
	switch f {
	case ReportPDF:
		return "application/pdf"
	case ReportExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Binary reports whether the response body is an opaque downloadable blob.
func (f ReportFormat) Binary() bool {
	return f == ReportPDF || f == ReportExcel
}

// DefaultFilename is used when the server sends no Content-Disposition.
func (f ReportFormat) DefaultFilename() string {
	switch f {
	case ReportPDF:
		return "reporte.pdf"
	case ReportExcel:
		return "reporte.xlsx"
	default:
		return "reporte.json"
	}
}
