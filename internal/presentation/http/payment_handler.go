package http

import (
	"net/http"

	apppayment "github.com/aromahub/perfumeshop/internal/application/payment"
	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment service routes.
type PaymentHandler struct {
	svc      *apppayment.Service
	port     string
	orderURL string
}

func NewPaymentHandler(svc *apppayment.Service, port, orderURL string) *PaymentHandler {
	return &PaymentHandler{svc: svc, port: port, orderURL: orderURL}
}

func (h *PaymentHandler) Register(r *gin.Engine) {
	r.POST("/payment/:perfumeID", h.pay)
	r.GET("/health", h.health)
}

type paymentDetails struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
}

func (h *PaymentHandler) pay(c *gin.Context) {
	result, err := h.svc.Pay(c.Request.Context(), c.Param("perfumeID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment failed !",
			"error":   "Could not place order or service unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment completed successfully! ✓",
		"order":   result.Order,
		"paymentDetails": paymentDetails{
			TransactionID: result.Payment.TransactionID,
			Amount:        result.Payment.Amount,
			Status:        string(result.Payment.Status),
		},
	})
}

func (h *PaymentHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                  "Payment Service is healthy!",
		"port":                    h.port,
		"orderServiceConnectedTo": h.orderURL,
	})
}
