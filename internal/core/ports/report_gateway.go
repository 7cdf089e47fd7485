package ports

import (
	"context"
	"encoding/json"

	"github.com/smartsales365/terminal/internal/core/domain"
)

// ReportResult is either structured data (screen format) or an opaque blob
// (pdf/excel), depending on what the server produced.
type ReportResult struct {
	Format domain.ReportFormat
	// Data holds the decoded JSON payload for screen reports.
	Data json.RawMessage
	// Blob holds the raw bytes of a binary report.
	Blob        []byte
	ContentType string
	// Filename comes from Content-Disposition when the server names the file.
	Filename string
}

// ReportGateway wraps POST /api/reportes/generar/: natural-language prompt
// in, JSON or binary document out.
type ReportGateway interface {
	Generate(ctx context.Context, prompt string, format domain.ReportFormat) (*ReportResult, error)
}
