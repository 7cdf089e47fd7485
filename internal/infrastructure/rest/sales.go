package rest

import (
	"context"
	"net/http"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// SaleGateway implements ports.SaleGateway over /api/ventas/.
type SaleGateway struct {
	*Client
}

var _ ports.SaleGateway = (*SaleGateway)(nil)

func NewSaleGateway(client *Client) *SaleGateway {
	return &SaleGateway{Client: client}
}

type saleDetailPayload struct {
	ProductID int64 `json:"producto"`
	Quantity  int   `json:"cantidad"`
}

type createSalePayload struct {
	ClientID  *int64              `json:"cliente"`
	Details   []saleDetailPayload `json:"detalles"`
	NewClient *ports.ClientInput  `json:"cliente_nuevo,omitempty"`
}

func (g *SaleGateway) Create(ctx context.Context, input ports.CreateSaleInput) (*domain.Sale, error) {
	payload := createSalePayload{ClientID: input.ClientID, NewClient: input.NewClient}
	for _, item := range input.Items {
		payload.Details = append(payload.Details, saleDetailPayload{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	buf, err := marshalJSON(payload)
	if err != nil {
		return nil, err
	}
	req, err := g.newRequest(ctx, http.MethodPost, "/api/ventas/", buf, "application/json", true)
	if err != nil {
		return nil, err
	}
	if input.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", input.IdempotencyKey)
	}
	var sale domain.Sale
	if err := g.do(req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (g *SaleGateway) List(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := g.doJSON(ctx, http.MethodGet, "/api/ventas/", nil, &sales, true); err != nil {
		return nil, err
	}
	return sales, nil
}
