package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	domorder "github.com/aromahub/perfumeshop/internal/domain/order"
	domain "github.com/aromahub/perfumeshop/internal/domain/payment"
	"github.com/aromahub/perfumeshop/internal/infrastructure/id"
	"github.com/stretchr/testify/require"
)

type orderClientFunc func(ctx context.Context, perfumeID string) (*domorder.Summary, error)

func (f orderClientFunc) PlaceOrder(ctx context.Context, perfumeID string) (*domorder.Summary, error) {
	return f(ctx, perfumeID)
}

func orderOK(summary *domorder.Summary) orderClientFunc {
	return func(context.Context, string) (*domorder.Summary, error) {
		return summary, nil
	}
}

func newTestService(orders OrderClient) *Service {
	return NewService(orders, domain.SimulatedGateway{}, id.NewUUIDGenerator())
}

func TestPay(t *testing.T) {
	summary := domorder.NewSummary(&domorder.Perfume{Name: "Bleu de Chanel", Price: 99})
	svc := newTestService(orderOK(summary))

	res, err := svc.Pay(context.Background(), "64a0f5f5f5f5f5f5f5f5f5f5")
	require.NoError(t, err)
	require.Same(t, summary, res.Order)
	require.Equal(t, domain.StatusPaid, res.Payment.Status)
	require.Equal(t, 99.0, res.Payment.Amount, "payment amount comes from the order total")
	require.True(t, strings.HasPrefix(res.Payment.TransactionID, "txn_"))
	require.Len(t, res.Payment.TransactionID, len("txn_")+12)
}

func TestPayMintsFreshTransactionIDs(t *testing.T) {
	svc := newTestService(orderOK(domorder.NewSummary(&domorder.Perfume{Name: "X", Price: 1})))

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		res, err := svc.Pay(context.Background(), "64a0f5f5f5f5f5f5f5f5f5f5")
		require.NoError(t, err)
		require.False(t, seen[res.Payment.TransactionID], "transaction ids must not repeat")
		seen[res.Payment.TransactionID] = true
	}
}

func TestPayOrderFailure(t *testing.T) {
	svc := newTestService(orderClientFunc(func(context.Context, string) (*domorder.Summary, error) {
		return nil, domorder.ErrUnavailable
	}))

	_, err := svc.Pay(context.Background(), "missing")
	require.ErrorIs(t, err, ErrPaymentFailed)
}

func TestPayGatewayError(t *testing.T) {
	svc := NewService(
		orderOK(domorder.NewSummary(&domorder.Perfume{Name: "X", Price: 1})),
		gatewayFunc(func(context.Context, float64) (bool, error) {
			return false, errors.New("gateway timeout")
		}),
		id.NewUUIDGenerator(),
	)

	_, err := svc.Pay(context.Background(), "64a0f5f5f5f5f5f5f5f5f5f5")
	require.ErrorIs(t, err, ErrPaymentFailed)
}

type gatewayFunc func(ctx context.Context, amount float64) (bool, error)

func (f gatewayFunc) Authorize(ctx context.Context, amount float64) (bool, error) {
	return f(ctx, amount)
}
