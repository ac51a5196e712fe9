package order

import (
	"context"

	domain "github.com/aromahub/perfumeshop/internal/domain/order"
	"github.com/aromahub/perfumeshop/internal/pkg/logging"
	"go.uber.org/zap"
)

// CatalogClient fetches one perfume from the catalog service over the network.
type CatalogClient interface {
	PerfumeByID(ctx context.Context, id string) (*domain.Perfume, error)
}

// Service synthesizes order summaries from catalog data. Nothing is persisted.
type Service struct {
	catalog CatalogClient
}

func NewService(catalog CatalogClient) *Service {
	return &Service{catalog: catalog}
}

// PlaceOrder fetches the perfume and derives its order summary. Every fetch
// failure (transport error, non-2xx status, malformed payload) collapses into
// domain.ErrUnavailable; the root cause is logged, not returned.
func (s *Service) PlaceOrder(ctx context.Context, perfumeID string) (*domain.Summary, error) {
	perfume, err := s.catalog.PerfumeByID(ctx, perfumeID)
	if err != nil {
		logging.FromContext(ctx).Warn("order_catalog_fetch_failed",
			zap.String("perfume_id", perfumeID),
			zap.Error(err),
		)
		return nil, domain.ErrUnavailable
	}

	return domain.NewSummary(perfume), nil
}
