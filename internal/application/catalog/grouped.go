package catalog

import (
	"context"
	"fmt"

	domain "github.com/aromahub/perfumeshop/internal/domain/catalog"
	"github.com/aromahub/perfumeshop/internal/pkg/logging"
	"go.uber.org/zap"
)

// Section holds the three sub-slices of one named group. A perfume lands in
// All Products whenever it matches the group's criterion; Popular and New
// Arrivals additionally require the corresponding flag.
type Section struct {
	Popular     []*domain.Perfume `json:"Popular"`
	NewArrivals []*domain.Perfume `json:"New Arrivals"`
	AllProducts []*domain.Perfume `json:"All Products"`
}

// The five storefront sections: the three gender values plus a fixed subset of
// concentrations. Only EDT and EDP get a section of their own; the remaining
// concentration values appear under their gender section alone.
var sections = []struct {
	name    string
	matches func(*domain.Perfume) bool
}{
	{"Men Fragrance", func(p *domain.Perfume) bool { return p.Gender == domain.GenderMen }},
	{"Women Fragrance", func(p *domain.Perfume) bool { return p.Gender == domain.GenderWomen }},
	{"Unisex Fragrance", func(p *domain.Perfume) bool { return p.Gender == domain.GenderUnisex }},
	{"Eau de Toilette (EDT)", func(p *domain.Perfume) bool { return p.Concentration == domain.ConcentrationEDT }},
	{"Eau de Parfum (EDP)", func(p *domain.Perfume) bool { return p.Concentration == domain.ConcentrationEDP }},
}

// Grouped fetches the full catalog ordered by creation time descending and
// partitions it into the five named sections in a single pass. Groupings are
// recomputed on every call; at storefront catalog sizes this is acceptable.
func (s *Service) Grouped(ctx context.Context) (map[string]*Section, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("catalog_grouped_failed", zap.Error(err))
		return nil, fmt.Errorf("catalog: grouped: %w", err)
	}

	groups := make(map[string]*Section, len(sections))
	for _, sec := range sections {
		groups[sec.name] = &Section{
			Popular:     []*domain.Perfume{},
			NewArrivals: []*domain.Perfume{},
			AllProducts: []*domain.Perfume{},
		}
	}

	for _, p := range all {
		for _, sec := range sections {
			if !sec.matches(p) {
				continue
			}
			g := groups[sec.name]
			g.AllProducts = append(g.AllProducts, p)
			if p.IsPopular {
				g.Popular = append(g.Popular, p)
			}
			if p.IsNewArrival {
				g.NewArrivals = append(g.NewArrivals, p)
			}
		}
	}

	return groups, nil
}
