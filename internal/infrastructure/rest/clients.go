package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// ClientGateway implements ports.ClientGateway over /api/clientes/.
type ClientGateway struct {
	*Client
}

var _ ports.ClientGateway = (*ClientGateway)(nil)

func NewClientGateway(client *Client) *ClientGateway {
	return &ClientGateway{Client: client}
}

func (g *ClientGateway) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := g.doJSON(ctx, http.MethodGet, "/api/clientes/", nil, &clients, true); err != nil {
		return nil, err
	}
	return clients, nil
}

func (g *ClientGateway) Create(ctx context.Context, input ports.ClientInput) (*domain.Client, error) {
	var created domain.Client
	if err := g.doJSON(ctx, http.MethodPost, "/api/clientes/", input, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *ClientGateway) Update(ctx context.Context, id int64, input ports.ClientInput) (*domain.Client, error) {
	var updated domain.Client
	path := fmt.Sprintf("/api/clientes/%d/", id)
	if err := g.doJSON(ctx, http.MethodPut, path, input, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *ClientGateway) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/clientes/%d/", id)
	return g.doJSON(ctx, http.MethodDelete, path, nil, nil, true)
}
