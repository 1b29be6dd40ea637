package http

import (
	"net/http"
	"strconv"

	"medicart-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.carts.GetOrCreateCart(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	total, err := cart.TotalAmount()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"cart":       cart,
		"total":      total,
		"totalItems": cart.TotalItemCount(),
	})
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	cart, err := h.carts.AddItem(c.Request.Context(), middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, cart)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid product id"})
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	cart, err := h.carts.UpdateItemQuantity(c.Request.Context(), middleware.UserID(c), productID, *req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, cart)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid product id"})
		return
	}
	cart, err := h.carts.RemoveItem(c.Request.Context(), middleware.UserID(c), productID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, cart)
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.carts.ClearCart(c.Request.Context(), middleware.UserID(c)); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}
