package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// ProductGateway implements ports.ProductGateway over /api/productos/.
// Create and update switch to multipart form encoding because of the
// optional image file; bulk upload posts the spreadsheet the same way.
type ProductGateway struct {
	*Client
}

var _ ports.ProductGateway = (*ProductGateway)(nil)

func NewProductGateway(client *Client) *ProductGateway {
	return &ProductGateway{Client: client}
}

func (g *ProductGateway) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := g.doJSON(ctx, http.MethodGet, "/api/productos/", nil, &products, true); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *ProductGateway) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	return g.submit(ctx, http.MethodPost, "/api/productos/", input)
}

func (g *ProductGateway) Update(ctx context.Context, id int64, input ports.ProductInput) (*domain.Product, error) {
	return g.submit(ctx, http.MethodPut, fmt.Sprintf("/api/productos/%d/", id), input)
}

func (g *ProductGateway) Delete(ctx context.Context, id int64) error {
	return g.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/productos/%d/", id), nil, nil, true)
}

func (g *ProductGateway) BulkUpload(ctx context.Context, file ports.FileUpload) (*ports.BulkUploadResult, error) {
	body, contentType, err := multipartBody(nil, map[string]ports.FileUpload{"archivo": file})
	if err != nil {
		return nil, err
	}
	req, err := g.newRequest(ctx, http.MethodPost, "/api/productos/upload_masivo/", body, contentType, true)
	if err != nil {
		return nil, err
	}
	var result ports.BulkUploadResult
	if err := g.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *ProductGateway) submit(ctx context.Context, method, path string, input ports.ProductInput) (*domain.Product, error) {
	fields := map[string]string{
		"nombre":         input.Name,
		"marca":          input.Brand,
		"modelo":         input.Model,
		"categoria":      input.Category,
		"descripcion":    input.Description,
		"precio":         strconv.FormatFloat(input.Price, 'f', 2, 64),
		"stock":          strconv.Itoa(input.Stock),
		"garantia_meses": strconv.Itoa(input.WarrantyMonths),
	}
	files := map[string]ports.FileUpload{}
	if input.Image != nil {
		files["imagen_file"] = *input.Image
	}
	body, contentType, err := multipartBody(fields, files)
	if err != nil {
		return nil, err
	}
	req, err := g.newRequest(ctx, method, path, body, contentType, true)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := g.do(req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
