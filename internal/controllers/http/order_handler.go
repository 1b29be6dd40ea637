package http

import (
	"context"
	"net/http"
	"strconv"

	"medicart-service/internal/domain"
	"medicart-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	billing := req.BillingAddress
	if billing == "" {
		billing = req.ShippingAddress
	}
	order, err := h.orders.Checkout(c.Request.Context(), middleware.UserID(c), req.ShippingAddress, billing)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := pathID(c)
	if err != nil {
		return
	}
	order, err := h.orders.GetOrderByID(c.Request.Context(), middleware.UserID(c), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, order)
}

func (h *Handler) CancelOrder(c *gin.Context) {
	orderID, err := pathID(c)
	if err != nil {
		return
	}
	order, err := h.orders.CancelOrder(c.Request.Context(), middleware.UserID(c), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, order)
}

func (h *Handler) ConfirmOrder(c *gin.Context)         { h.orderTransition(c, h.orders.ConfirmOrder) }
func (h *Handler) StartProcessingOrder(c *gin.Context) { h.orderTransition(c, h.orders.StartProcessing) }
func (h *Handler) ShipOrder(c *gin.Context)            { h.orderTransition(c, h.orders.ShipOrder) }
func (h *Handler) DeliverOrder(c *gin.Context)         { h.orderTransition(c, h.orders.DeliverOrder) }
func (h *Handler) RefundOrder(c *gin.Context)          { h.orderTransition(c, h.orders.RefundOrder) }

func (h *Handler) orderTransition(c *gin.Context, op func(ctx context.Context, orderID uint64) (*domain.Order, error)) {
	orderID, err := pathID(c)
	if err != nil {
		return
	}
	order, err := op(c.Request.Context(), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, order)
}

func pathID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return 0, err
	}
	return id, nil
}
