package http

import (
	"errors"
	"net/http"

	appcatalog "github.com/aromahub/perfumeshop/internal/application/catalog"
	domain "github.com/aromahub/perfumeshop/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

const adminKeyHeader = "x-admin-api-key"

// CatalogHandler exposes the catalog service routes.
type CatalogHandler struct {
	svc *appcatalog.Service
}

func NewCatalogHandler(svc *appcatalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Register mounts the catalog routes. The static /perfumes/grouped route is
// registered alongside /perfumes/:id; the router matches static segments
// first, so "grouped" is never treated as an id.
func (h *CatalogHandler) Register(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/health", h.health)

	r.GET("/perfumes", h.list)
	r.GET("/perfumes/grouped", h.grouped)
	r.GET("/perfumes/:id", h.getByID)

	r.POST("/perfumes", h.create)
	r.PATCH("/perfumes/:id", h.update)
	r.DELETE("/perfumes/:id", h.delete)
	r.POST("/admin/import", h.bulkImport)
}

func (h *CatalogHandler) list(c *gin.Context) {
	values := c.Request.URL.Query()

	params := appcatalog.ListParams{
		Gender:        values.Get("gender"),
		Concentration: values.Get("concentration"),
		Search:        values.Get("search"),
		Page:          values.Get("page"),
		Limit:         values.Get("limit"),
	}
	// Presence of the flag matters, not just its value: "popular=false"
	// filters on isPopular=false, while an absent flag is no constraint.
	if vs, ok := values["popular"]; ok && len(vs) > 0 {
		params.Popular = &vs[0]
	}
	if vs, ok := values["new"]; ok && len(vs) > 0 {
		params.New = &vs[0]
	}

	items, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) getByID(c *gin.Context) {
	item, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) grouped(c *gin.Context) {
	groups, err := h.svc.Grouped(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *CatalogHandler) create(c *gin.Context) {
	var in appcatalog.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), c.GetHeader(adminKeyHeader), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type patchRequest struct {
	Name          *string               `json:"name"`
	Brand         *string               `json:"brand"`
	Description   *string               `json:"description"`
	Price         *float64              `json:"price"`
	Stock         *int                  `json:"stock"`
	Gender        *domain.Gender        `json:"gender"`
	Concentration *domain.Concentration `json:"concentration"`
	IsPopular     *bool                 `json:"isPopular"`
	IsNewArrival  *bool                 `json:"isNewArrival"`
	ImageURL      *string               `json:"imageUrl"`
	Tags          *[]string             `json:"tags"`
}

func (h *CatalogHandler) update(c *gin.Context) {
	var req patchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	patch := domain.Patch{
		Name:          req.Name,
		Brand:         req.Brand,
		Description:   req.Description,
		Price:         req.Price,
		Stock:         req.Stock,
		Gender:        req.Gender,
		Concentration: req.Concentration,
		IsPopular:     req.IsPopular,
		IsNewArrival:  req.IsNewArrival,
		ImageURL:      req.ImageURL,
		Tags:          req.Tags,
	}

	updated, err := h.svc.Update(c.Request.Context(), c.GetHeader(adminKeyHeader), c.Param("id"), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.GetHeader(adminKeyHeader), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *CatalogHandler) bulkImport(c *gin.Context) {
	var items []appcatalog.CreateInput
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide an array of items"})
		return
	}

	inserted, err := h.svc.Import(c.Request.Context(), c.GetHeader(adminKeyHeader), items)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": len(inserted), "items": inserted})
}

func (h *CatalogHandler) health(c *gin.Context) {
	dbState := 1
	if err := h.svc.Ping(c.Request.Context()); err != nil {
		dbState = 0
	}
	c.JSON(http.StatusOK, gin.H{"status": "Catalog OK", "dbState": dbState})
}

func (h *CatalogHandler) index(c *gin.Context) {
	c.String(http.StatusOK,
		"Catalog Service\n"+
			"GET /perfumes\n"+
			"GET /perfumes/:id\n"+
			"GET /perfumes/grouped\n"+
			"POST /perfumes (admin only via x-admin-api-key)\n"+
			"PATCH /perfumes/:id (admin only)\n"+
			"DELETE /perfumes/:id (admin only)\n")
}

func (h *CatalogHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfume not found"})
	case errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
	case errors.Is(err, domain.ErrInvalidPerfume):
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, gender, concentration are required"})
	case errors.Is(err, appcatalog.ErrEmptyImport):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide an array of items"})
	case errors.Is(err, appcatalog.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	case errors.Is(err, appcatalog.ErrAdminKeyUnset):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "ADMIN_API_KEY not set"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
