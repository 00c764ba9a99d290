package handler

import (
	"context"
	"errors"
	"net/http"

	"foodcart-api/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterOrderHandler accepts new delivery orders from the storefront.
type RegisterOrderHandler struct {
	service OrderService
}

// OrderService interface for dependency injection
type OrderService interface {
	Register(ctx context.Context, cmd service.IntakeCommand) (int64, error)
}

// NewRegisterOrderHandler creates a new order intake handler.
func NewRegisterOrderHandler(svc OrderService) *RegisterOrderHandler {
	return &RegisterOrderHandler{service: svc}
}

type registerOrderItem struct {
	Product  int64 `json:"product" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

type registerOrderRequest struct {
	Firstname     string              `json:"firstname" binding:"required"`
	Lastname      string              `json:"lastname" binding:"required"`
	Phonenumber   string              `json:"phonenumber" binding:"required"`
	Address       string              `json:"address" binding:"required"`
	PaymentMethod string              `json:"payment_method"`
	Comments      string              `json:"comments"`
	Products      []registerOrderItem `json:"products" binding:"required"`
}

// Register handles POST /api/orders requests.
//
//	@Summary	Register a new delivery order
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	map[string]int64
//	@Failure	400	{object}	map[string]string
//	@Router		/api/orders [post]
func (h *RegisterOrderHandler) Register(c *gin.Context) {
	var req registerOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := service.IntakeCommand{
		Firstname:     req.Firstname,
		Lastname:      req.Lastname,
		Phonenumber:   req.Phonenumber,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Comments:      req.Comments,
	}
	for _, item := range req.Products {
		cmd.Items = append(cmd.Items, service.IntakeItem{ProductID: item.Product, Quantity: item.Quantity})
	}

	id, err := h.service.Register(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
