package rest

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// ReportGateway implements ports.ReportGateway over
// POST /api/reportes/generar/. The format hint selects the Accept header;
// binary responses are kept as opaque blobs. Error payloads the server sent
// with a binary content type still get a JSON decode pass (decodeAPIError
// ignores the declared type).
type ReportGateway struct {
	*Client
}

var _ ports.ReportGateway = (*ReportGateway)(nil)

func NewReportGateway(client *Client) *ReportGateway {
	return &ReportGateway{Client: client}
}

func (g *ReportGateway) Generate(ctx context.Context, prompt string, format domain.ReportFormat) (*ports.ReportResult, error) {
	buf, err := marshalJSON(map[string]string{"prompt": prompt})
	if err != nil {
		return nil, err
	}
	req, err := g.newRequest(ctx, http.MethodPost, "/api/reportes/generar/", buf, "application/json", true)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", format.Accept())

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read report response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, g.fail(resp.StatusCode, data)
	}

	contentType := resp.Header.Get("Content-Type")
	result := &ports.ReportResult{Format: format, ContentType: contentType}

	if strings.HasPrefix(contentType, "application/json") {
		result.Data = data
		return result, nil
	}

	result.Blob = data
	if disposition := resp.Header.Get("Content-Disposition"); disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			result.Filename = params["filename"]
		}
	}
	return result, nil
}
