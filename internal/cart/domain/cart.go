package domain

// Product is the cart's copy of a catalog product.
type Product struct {
	ID         string
	Name       string
	Currency   string
	UnitAmount int64
	ImageRef   string
}

type Line struct {
	Product  Product
	Quantity int64
}

func (l Line) TotalPrice() int64 {
	return l.Product.UnitAmount * l.Quantity
}

// Active lines are the orderable ones. A zeroed line stays in the cart so it
// can be restored without going back to the catalog.
func (l Line) Active() bool {
	return l.Quantity > 0
}

// Cart aggregates lines keyed by product id. Lines keep first-added order.
type Cart struct {
	CustomerID string

	lines map[string]*Line
	order []string
}

func NewCart(customerID string) *Cart {
	return &Cart{
		CustomerID: customerID,
		lines:      make(map[string]*Line),
	}
}

// AddProduct increments the product's line, creating it at quantity 1.
func (c *Cart) AddProduct(p Product) {
	if l, ok := c.lines[p.ID]; ok {
		l.Quantity++
		return
	}
	c.lines[p.ID] = &Line{Product: p, Quantity: 1}
	c.order = append(c.order, p.ID)
}

// Increment reports whether a line for productID exists.
func (c *Cart) Increment(productID string) bool {
	l, ok := c.lines[productID]
	if !ok {
		return false
	}
	l.Quantity++
	return true
}

// Decrement floors at zero and never removes the line. It reports whether the
// quantity changed.
func (c *Cart) Decrement(productID string) bool {
	l, ok := c.lines[productID]
	if !ok || l.Quantity == 0 {
		return false
	}
	l.Quantity--
	return true
}

func (c *Cart) RemoveLine(productID string) bool {
	if _, ok := c.lines[productID]; !ok {
		return false
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *Cart) Line(productID string) (Line, bool) {
	l, ok := c.lines[productID]
	if !ok {
		return Line{}, false
	}
	return *l, true
}

// Lines returns copies of every line, zeroed ones included.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) ActiveLines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		if l := c.lines[id]; l.Active() {
			out = append(out, *l)
		}
	}
	return out
}

func (c *Cart) ActiveItemCount() int {
	n := 0
	for _, l := range c.lines {
		if l.Active() {
			n++
		}
	}
	return n
}

func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, l := range c.lines {
		if l.Active() {
			total += l.TotalPrice()
		}
	}
	return total
}

// RemoveActiveLines drops every line with quantity > 0 and returns copies of
// them. Zeroed lines stay.
func (c *Cart) RemoveActiveLines() []Line {
	removed := c.ActiveLines()
	for _, l := range removed {
		c.RemoveLine(l.Product.ID)
	}
	return removed
}

// Snapshot is a read-only view of a cart.
type Snapshot struct {
	CustomerID      string
	Lines           []Line
	ActiveItemCount int
	TotalAmount     int64
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		CustomerID:      c.CustomerID,
		Lines:           c.Lines(),
		ActiveItemCount: c.ActiveItemCount(),
		TotalAmount:     c.TotalAmount(),
	}
}
