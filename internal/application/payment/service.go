package payment

import (
	"context"
	"errors"

	domorder "github.com/aromahub/perfumeshop/internal/domain/order"
	domain "github.com/aromahub/perfumeshop/internal/domain/payment"
	"github.com/aromahub/perfumeshop/internal/pkg/logging"
	"go.uber.org/zap"
)

// ErrPaymentFailed is the uniform client-facing failure, independent of the
// true cause of the order fetch failure.
var ErrPaymentFailed = errors.New("payment: could not place order or service unavailable")

// OrderClient places an order through the order service.
type OrderClient interface {
	PlaceOrder(ctx context.Context, perfumeID string) (*domorder.Summary, error)
}

// IDGenerator mints transaction identifiers. Fresh per call, best-effort
// unique, never persisted.
type IDGenerator interface {
	NewTransactionID() string
}

// Service is the simulated payment gateway front: it chains into the order
// service and settles every found order through the payment state machine.
type Service struct {
	orders  OrderClient
	gateway domain.Gateway
	idGen   IDGenerator
}

func NewService(orders OrderClient, gateway domain.Gateway, idGen IDGenerator) *Service {
	return &Service{orders: orders, gateway: gateway, idGen: idGen}
}

// Result pairs the upstream order summary with the settled payment.
type Result struct {
	Order   *domorder.Summary
	Payment *domain.Payment
}

// Pay places the order and settles it. With the simulated gateway the
// settlement always succeeds on a found perfume; the decline branch exists
// only for a future real-gateway integration.
func (s *Service) Pay(ctx context.Context, perfumeID string) (*Result, error) {
	summary, err := s.orders.PlaceOrder(ctx, perfumeID)
	if err != nil {
		logging.FromContext(ctx).Warn("payment_order_failed",
			zap.String("perfume_id", perfumeID),
			zap.Error(err),
		)
		return nil, ErrPaymentFailed
	}

	p, err := domain.New(s.idGen.NewTransactionID(), summary.Total)
	if err != nil {
		return nil, ErrPaymentFailed
	}

	approved, err := s.gateway.Authorize(ctx, summary.Total)
	if err != nil || !approved {
		_ = p.Settle(false, "gateway declined")
		return nil, ErrPaymentFailed
	}
	if err := p.Settle(true, ""); err != nil {
		return nil, ErrPaymentFailed
	}

	logging.FromContext(ctx).Info("payment_settled",
		zap.String("transaction_id", p.TransactionID),
		zap.Float64("amount", p.Amount),
	)
	return &Result{Order: summary, Payment: p}, nil
}
