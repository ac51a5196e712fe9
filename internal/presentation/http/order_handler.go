package http

import (
	"net/http"

	apporder "github.com/aromahub/perfumeshop/internal/application/order"
	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order service routes.
type OrderHandler struct {
	svc        *apporder.Service
	catalogURL string
}

func NewOrderHandler(svc *apporder.Service, catalogURL string) *OrderHandler {
	return &OrderHandler{svc: svc, catalogURL: catalogURL}
}

func (h *OrderHandler) Register(r *gin.Engine) {
	r.GET("/orders/:perfumeID", h.placeOrder)
	r.GET("/health", h.health)
	r.GET("/test", h.test)
}

func (h *OrderHandler) placeOrder(c *gin.Context) {
	summary, err := h.svc.PlaceOrder(c.Request.Context(), c.Param("perfumeID"))
	if err != nil {
		// Uniform failure: "not found" and "catalog down" are deliberately
		// indistinguishable here.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not find perfume or catalog service down"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *OrderHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "Order Service OK",
		"catalogConnectedTo": h.catalogURL,
	})
}

func (h *OrderHandler) test(c *gin.Context) {
	c.String(http.StatusOK, "Order Service running")
}
