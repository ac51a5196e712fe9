package catalog

import "context"

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Name          *string
	Brand         *string
	Description   *string
	Price         *float64
	Stock         *int
	Gender        *Gender
	Concentration *Concentration
	IsPopular     *bool
	IsNewArrival  *bool
	ImageURL      *string
	Tags          *[]string
}

// Validate rejects patches that would break the shape invariants of the
// fields they touch.
func (p Patch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrInvalidPerfume
	}
	if p.Price != nil && *p.Price < 0 {
		return ErrInvalidPerfume
	}
	if p.Gender != nil && !ValidGender(string(*p.Gender)) {
		return ErrInvalidPerfume
	}
	if p.Concentration != nil && !ValidConcentration(string(*p.Concentration)) {
		return ErrInvalidPerfume
	}
	return nil
}

// Repository is the document store holding perfume records.
// Find and FindAll return records ordered by creation time descending.
type Repository interface {
	Find(ctx context.Context, q Query) ([]*Perfume, error)
	FindByID(ctx context.Context, id string) (*Perfume, error)
	FindAll(ctx context.Context) ([]*Perfume, error)
	Insert(ctx context.Context, p *Perfume) error
	InsertMany(ctx context.Context, perfumes []*Perfume) error
	Update(ctx context.Context, id string, patch Patch) (*Perfume, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
