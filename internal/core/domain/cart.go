package domain

// ProductRef is the product snapshot a cart line holds.
type ProductRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Price    Money  `json:"precio"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"imagen_url"`
}

// CartLine is one product entry in the cart. Quantity is always within
// [1, Product.Stock] after any mutation.
type CartLine struct {
	Product  ProductRef `json:"producto"`
	Quantity int        `json:"cantidad"`
}

func (l CartLine) Subtotal() Money {
	return l.Product.Price * Money(l.Quantity)
}

// Cart is the in-progress order. A product appears at most once; insertion
// order is preserved for display but carries no semantics. Cart is owned by
// a single goroutine and performs no locking.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID int64) int {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add inserts the product or raises its quantity, clamping to the stock
// captured in the snapshot. The returned bool reports whether the cart
// changed; hitting the stock limit is a no-change signal, not an error.
func (c *Cart) Add(p ProductRef, qty int) bool {
	if qty <= 0 {
		return false
	}
	if i := c.find(p.ID); i >= 0 {
		line := &c.Lines[i]
		next := line.Quantity + qty
		if next > line.Product.Stock {
			next = line.Product.Stock
		}
		if next <= line.Quantity {
			return false
		}
		line.Quantity = next
		return true
	}
	if p.Stock <= 0 {
		return false
	}
	if qty > p.Stock {
		qty = p.Stock
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: qty})
	return true
}

// SetQuantity clamps qty into [1, stock]; zero or negative removes the line.
// Removing an absent line is a no-op.
func (c *Cart) SetQuantity(productID int64, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	i := c.find(productID)
	if i < 0 {
		return
	}
	line := &c.Lines[i]
	if qty > line.Product.Stock {
		qty = line.Product.Stock
	}
	if qty < 1 {
		qty = 1
	}
	line.Quantity = qty
}

// Remove deletes the line if present, otherwise does nothing.
func (c *Cart) Remove(productID int64) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total is recomputed from the lines on every read.
func (c *Cart) Total() Money {
	var total Money
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount is the sum of line quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
