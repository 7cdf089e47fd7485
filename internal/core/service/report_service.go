package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// ReportService turns a natural-language prompt into a rendered report:
// indented JSON for the screen format, a written file for binary formats.
type ReportService struct {
	reports ports.ReportGateway
	log     zerolog.Logger
}

var _ ports.ReportRunner = (*ReportService)(nil)

func NewReportService(reports ports.ReportGateway, log zerolog.Logger) *ReportService {
	return &ReportService{reports: reports, log: log}
}

func (s *ReportService) Generate(ctx context.Context, prompt string, format domain.ReportFormat, outPath string) (*ports.ReportOutcome, error) {
	res, err := s.reports.Generate(ctx, prompt, format)
	if err != nil {
		return nil, err
	}

	if !format.Binary() {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, res.Data, "", "  "); err != nil {
			// Non-JSON screen payloads are shown as-is.
			return &ports.ReportOutcome{Text: string(res.Data)}, nil
		}
		return &ports.ReportOutcome{Text: pretty.String()}, nil
	}

	if outPath == "" {
		outPath = res.Filename
	}
	if outPath == "" {
		outPath = format.DefaultFilename()
	}
	if err := os.MkdirAll(filepath.Dir(filepath.Clean(outPath)), 0o755); err != nil {
		return nil, fmt.Errorf("report output dir: %w", err)
	}
	if err := os.WriteFile(outPath, res.Blob, 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	s.log.Info().Str("path", outPath).Str("content_type", res.ContentType).Msg("report downloaded")
	return &ports.ReportOutcome{SavedPath: outPath}, nil
}
