package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apppayment "github.com/aromahub/perfumeshop/internal/application/payment"
	dompayment "github.com/aromahub/perfumeshop/internal/domain/payment"
	"github.com/aromahub/perfumeshop/internal/infrastructure/client"
	"github.com/aromahub/perfumeshop/internal/infrastructure/id"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// startServiceChain boots catalog and order services over httptest and wires a
// payment router to the front of the chain.
func startServiceChain(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	catalogURL, perfumeID := startCatalog(t)

	orderSrv := httptest.NewServer(newOrderRouter(t, catalogURL))
	t.Cleanup(orderSrv.Close)

	svc := apppayment.NewService(
		client.NewOrderClient(orderSrv.URL+"/orders", 2*time.Second),
		dompayment.SimulatedGateway{},
		id.NewUUIDGenerator(),
	)
	r := gin.New()
	NewPaymentHandler(svc, "5000", orderSrv.URL+"/orders").Register(r)
	return r, perfumeID
}

func TestPaymentThroughChain(t *testing.T) {
	r, perfumeID := startServiceChain(t)

	w := perform(r, http.MethodPost, "/payment/"+perfumeID, nil)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Payment completed successfully! ✓", body["message"])

	order, ok := body["order"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Order placed successfully!", order["message"])
	require.Equal(t, "Bleu de Chanel", order["perfume"])

	details, ok := body["paymentDetails"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, 99.0, details["amount"])
	require.Equal(t, "paid", details["status"])
	txn, ok := details["transactionId"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(txn, "txn_"))
	require.Len(t, txn, len("txn_")+12)
}

func TestPaymentFailure(t *testing.T) {
	t.Run("perfume missing", func(t *testing.T) {
		r, _ := startServiceChain(t)
		w := perform(r, http.MethodPost, "/payment/64a0f5f5f5f5f5f5f5f5f5f5", nil)
		requireStatus(t, w, http.StatusBadRequest)
		require.JSONEq(t, `{
			"success": false,
			"message": "Payment failed !",
			"error": "Could not place order or service unavailable"
		}`, w.Body.String())
	})

	t.Run("order service unreachable", func(t *testing.T) {
		svc := apppayment.NewService(
			client.NewOrderClient("http://127.0.0.1:1/orders", time.Second),
			dompayment.SimulatedGateway{},
			id.NewUUIDGenerator(),
		)
		r := gin.New()
		NewPaymentHandler(svc, "5000", "http://127.0.0.1:1/orders").Register(r)

		w := perform(r, http.MethodPost, "/payment/64a0f5f5f5f5f5f5f5f5f5f5", nil)
		requireStatus(t, w, http.StatusBadRequest)
		require.Contains(t, w.Body.String(), "Payment failed !")
	})
}

func TestPaymentHealth(t *testing.T) {
	svc := apppayment.NewService(
		client.NewOrderClient("http://localhost:4000/orders", time.Second),
		dompayment.SimulatedGateway{},
		id.NewUUIDGenerator(),
	)
	r := gin.New()
	NewPaymentHandler(svc, "5000", "http://localhost:4000/orders").Register(r)

	w := perform(r, http.MethodGet, "/health", nil)
	requireStatus(t, w, http.StatusOK)
	require.JSONEq(t, `{
		"status": "Payment Service is healthy!",
		"port": "5000",
		"orderServiceConnectedTo": "http://localhost:4000/orders"
	}`, w.Body.String())
}
