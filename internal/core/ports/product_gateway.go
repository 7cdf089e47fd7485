package ports

import (
	"context"
	"io"

	"github.com/smartsales365/terminal/internal/core/domain"
)

// FileUpload is a named stream attached to a multipart request.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

// ProductInput is the writable part of a product record. Create and update
// are always sent as multipart form data because of the optional image.
type ProductInput struct {
	Name           string  `validate:"required"`
	Brand          string  `validate:"required"`
	Model          string
	Category       string  `validate:"required"`
	Description    string
	Price          float64 `validate:"gte=0"`
	Stock          int     `validate:"gte=0"`
	WarrantyMonths int     `validate:"gte=0"`
	// Image replaces the stored product image when set.
	Image *FileUpload
}

// BulkUploadResult summarises a spreadsheet-driven batch creation.
type BulkUploadResult struct {
	Created int      `json:"creados"`
	Errors  []string `json:"errores"`
	Detail  string   `json:"detail"`
}

// ProductGateway wraps the /api/productos/ endpoints.
type ProductGateway interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	// BulkUpload posts a spreadsheet to upload_masivo for batch creation.
	BulkUpload(ctx context.Context, file FileUpload) (*BulkUploadResult, error)
}
