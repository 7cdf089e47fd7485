package ports

import (
	"context"

	"github.com/smartsales365/terminal/internal/core/domain"
)

// ClientInput is the writable part of a client record. It doubles as the
// cliente_nuevo payload attached to checkout calls.
type ClientInput struct {
	FirstName string `json:"nombre" validate:"required"`
	LastName  string `json:"apellido" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"telefono,omitempty"`
	Address   string `json:"direccion" validate:"required"`
	TaxID     string `json:"nit_ci,omitempty"`
}

// ClientGateway wraps the /api/clientes/ CRUD endpoints.
type ClientGateway interface {
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	Update(ctx context.Context, id int64, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}
