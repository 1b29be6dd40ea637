package http

import (
	"errors"
	"net/http"

	"medicart-service/internal/domain"
	"medicart-service/internal/middleware"
	"medicart-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	auth         *services.AuthService
	carts        *services.CartService
	orders       *services.OrderService
	appointments *services.AppointmentService
	catalog      *services.CatalogService
	enrollments  *services.EnrollmentService
}

func NewHandler(
	auth *services.AuthService,
	carts *services.CartService,
	orders *services.OrderService,
	appointments *services.AppointmentService,
	catalog *services.CatalogService,
	enrollments *services.EnrollmentService,
) *Handler {
	return &Handler{
		auth:         auth,
		carts:        carts,
		orders:       orders,
		appointments: appointments,
		catalog:      catalog,
		enrollments:  enrollments,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	authMw := middleware.NewAuthMiddleware(h.auth)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/courses", h.ListCourses)
	r.GET("/courses/:id", h.GetCourse)

	user := r.Group("/", authMw.RequireAuth())
	{
		user.GET("/cart", h.GetCart)
		user.POST("/cart/items", h.AddCartItem)
		user.PUT("/cart/items/:productId", h.UpdateCartItem)
		user.DELETE("/cart/items/:productId", h.RemoveCartItem)
		user.DELETE("/cart", h.ClearCart)

		user.POST("/orders/checkout", h.Checkout)
		user.GET("/orders", h.ListOrders)
		user.GET("/orders/:id", h.GetOrder)
		user.POST("/orders/:id/cancel", h.CancelOrder)

		user.POST("/appointments", h.BookAppointment)
		user.GET("/appointments", h.ListAppointments)
		user.POST("/appointments/:id/cancel", h.CancelAppointment)
		user.POST("/appointments/:id/reschedule", h.RescheduleAppointment)

		user.POST("/enrollments", h.Enroll)
		user.GET("/enrollments", h.ListEnrollments)
	}

	admin := r.Group("/admin", authMw.RequireAuth(), authMw.RequireAdmin())
	{
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id/stock", h.UpdateProductStock)
		admin.POST("/orders/:id/confirm", h.ConfirmOrder)
		admin.POST("/orders/:id/process", h.StartProcessingOrder)
		admin.POST("/orders/:id/ship", h.ShipOrder)
		admin.POST("/orders/:id/deliver", h.DeliverOrder)
		admin.POST("/orders/:id/refund", h.RefundOrder)
		admin.POST("/appointments/:id/confirm", h.ConfirmAppointment)
		admin.POST("/appointments/:id/complete", h.CompleteAppointment)
		admin.POST("/appointments/:id/no-show", h.MarkAppointmentNoShow)
		admin.PUT("/appointments/:id/status", h.AdminSetAppointmentStatus)
	}
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// fail maps known domain errors to HTTP codes; anything unrecognized is a 500
// with a generic message.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status, msg = http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrInvalidStateTransition):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrSlotConflict), errors.Is(err, domain.ErrOutsideAvailability):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidOperation):
		status, msg = http.StatusBadRequest, err.Error()
	}

	c.JSON(status, gin.H{"success": false, "error": msg})
}
