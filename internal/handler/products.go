package handler

import (
	"context"
	"net/http"

	"foodcart-api/internal/models"
	"foodcart-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductsHandler serves the storefront product list and the admin
// availability matrix.
type ProductsHandler struct {
	service MenuService
}

// MenuService interface for dependency injection
type MenuService interface {
	AvailableProducts(ctx context.Context) ([]models.Product, error)
	Matrix(ctx context.Context) (service.AvailabilityMatrix, error)
}

// NewProductsHandler creates a new products handler.
func NewProductsHandler(svc MenuService) *ProductsHandler {
	return &ProductsHandler{service: svc}
}

// List handles GET /api/products requests.
//
//	@Summary	Products orderable right now
//	@Produce	json
//	@Success	200	{array}	models.Product
//	@Router		/api/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.service.AvailableProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// Matrix handles GET /api/products/availability requests.
//
//	@Summary	Product availability per restaurant
//	@Produce	json
//	@Success	200	{object}	service.AvailabilityMatrix
//	@Router		/api/products/availability [get]
func (h *ProductsHandler) Matrix(c *gin.Context) {
	matrix, err := h.service.Matrix(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, matrix)
}
