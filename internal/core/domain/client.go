package domain

// Client is a purchasing client record managed under /api/clientes/.
type Client struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
	Address   string `json:"direccion"`
	TaxID     string `json:"nit_ci"`
}
