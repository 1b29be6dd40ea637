package http

import (
	"net/http"
	"strconv"

	"medicart-service/internal/domain"
	"medicart-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *Handler) ListProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	products, err := h.catalog.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, product)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid amount"})
		return
	}
	price, err := domain.NewMoney(amount, domain.Currency(req.Currency))
	if err != nil {
		fail(c, err)
		return
	}
	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		CourseID:    req.CourseID,
		IsActive:    true,
	}
	if err := h.catalog.CreateProduct(c.Request.Context(), product); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, product)
}

func (h *Handler) UpdateProductStock(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	var req UpdateProductStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	product.Stock = *req.Stock
	if err := h.catalog.UpdateProduct(c.Request.Context(), product); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, product)
}

func (h *Handler) ListCourses(c *gin.Context) {
	courses, err := h.catalog.ListCourses(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, courses)
}

func (h *Handler) GetCourse(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	course, err := h.catalog.GetCourse(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, course)
}

func (h *Handler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	enrollment, err := h.enrollments.Enroll(c.Request.Context(), middleware.UserID(c), req.CourseID, 0)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, enrollment)
}

func (h *Handler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.enrollments.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, enrollments)
}
