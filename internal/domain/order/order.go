package order

import "errors"

// ErrUnavailable is the uniform failure for the order placement path. It
// deliberately hides whether the perfume was missing or the catalog service
// was down; callers cannot disambiguate from the response alone.
var ErrUnavailable = errors.New("order: could not find perfume or catalog service down")

// Perfume is the order service's view of a catalog record: exactly the fields
// the order summary is computed from.
type Perfume struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Summary is an ephemeral projection of one perfume into order-shaped fields.
// It is computed per request and never persisted.
type Summary struct {
	Message string  `json:"message"`
	Perfume string  `json:"perfume"`
	Price   float64 `json:"price"`
	Total   float64 `json:"total"`
}

// NewSummary derives an order summary from a fetched perfume. Orders are
// single-item with no quantity concept, so the total is the unit price.
func NewSummary(p *Perfume) *Summary {
	return &Summary{
		Message: "Order placed successfully!",
		Perfume: p.Name,
		Price:   p.Price,
		Total:   p.Price,
	}
}
