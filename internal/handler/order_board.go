package handler

import (
	"context"
	"net/http"

	"foodcart-api/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderBoardHandler serves the manager order board.
type OrderBoardHandler struct {
	service BoardService
}

// BoardService interface for dependency injection
type BoardService interface {
	Board(ctx context.Context) ([]service.BoardEntry, error)
}

// NewOrderBoardHandler creates a new order board handler.
func NewOrderBoardHandler(svc BoardService) *OrderBoardHandler {
	return &OrderBoardHandler{service: svc}
}

// Board handles GET /api/orders/board requests.
//
//	@Summary	Open orders with eligible restaurants and distances
//	@Produce	json
//	@Success	200	{array}	service.BoardEntry
//	@Router		/api/orders/board [get]
func (h *OrderBoardHandler) Board(c *gin.Context) {
	board, err := h.service.Board(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, board)
}
