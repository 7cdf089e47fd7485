package ports

import (
	"context"

	"github.com/smartsales365/terminal/internal/core/domain"
)

// SaleItemInput references a product and quantity in a sale or payment
// intent request.
type SaleItemInput struct {
	ProductID int64 `json:"producto"`
	Quantity  int   `json:"cantidad"`
}

// CreateSaleInput registers a sale. Customers leave ClientID nil (the
// backend binds their own client profile, creating it from NewClient when
// absent); sellers and admins must reference an existing client.
type CreateSaleInput struct {
	ClientID *int64
	Items    []SaleItemInput
	// NewClient feeds the backend's cliente_nuevo auto-creation path.
	NewClient *ClientInput
	// IdempotencyKey guards against double registration of the same order.
	IdempotencyKey string
}

// SaleGateway wraps the /api/ventas/ endpoints. Listing is filtered by role
// on the server: customers only see their own purchases.
type SaleGateway interface {
	Create(ctx context.Context, input CreateSaleInput) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
}
