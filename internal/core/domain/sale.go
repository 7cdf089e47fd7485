package domain

import "time"

// SaleStatus mirrors the backend's venta state codes.
type SaleStatus string

const (
	SalePending   SaleStatus = "PEN"
	SaleCompleted SaleStatus = "COM"
	SaleCancelled SaleStatus = "CAN"
)

func (s SaleStatus) Label() string {
	switch s {
	case SalePending:
		return "pending"
	case SaleCompleted:
		return "completed"
	case SaleCancelled:
		return "cancelled"
	default:
		return string(s)
	}
}

// SaleDetail is one line of a registered sale. Unit price and subtotal are
// computed server-side at sale time.
type SaleDetail struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"producto"`
	ProductName string `json:"nombre_producto"`
	Quantity    int    `json:"cantidad"`
	UnitPrice   Money  `json:"precio_unitario"`
	Subtotal    Money  `json:"subtotal"`
}

// SaleClientInfo is the trimmed client view embedded in sale responses.
type SaleClientInfo struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
}

// Sale is a registered transaction from /api/ventas/.
type Sale struct {
	ID             int64           `json:"id"`
	Client         *SaleClientInfo `json:"cliente_info"`
	SellerUsername string          `json:"vendedor_username"`
	Date           time.Time       `json:"fecha_venta"`
	Total          Money           `json:"total"`
	Status         SaleStatus      `json:"estado"`
	Details        []SaleDetail    `json:"detalles"`
}
