package domain

// Product is a catalog record managed under /api/productos/.
type Product struct {
	ID             int64  `json:"id"`
	Name           string `json:"nombre"`
	Brand          string `json:"marca"`
	Model          string `json:"modelo"`
	Category       string `json:"categoria"`
	Description    string `json:"descripcion"`
	Price          Money  `json:"precio"`
	Stock          int    `json:"stock"`
	WarrantyMonths int    `json:"garantia_meses"`
	ImageURL       string `json:"imagen_url"`
}

// Ref snapshots the fields the cart needs. The snapshot is taken at add-time
// and not re-validated against live stock until checkout.
func (p Product) Ref() ProductRef {
	return ProductRef{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		ImageURL: p.ImageURL,
	}
}
