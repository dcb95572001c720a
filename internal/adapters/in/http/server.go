package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server exposes read-only views of the running process.
type Server struct {
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getCouriersHandler      queries.GetCouriersQueryHandler
	getMenuHandler          queries.GetMenuQueryHandler
}

func NewServer(
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getCouriersHandler queries.GetCouriersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		getPendingOrdersHandler: getPendingOrdersHandler,
		getCouriersHandler:      getCouriersHandler,
		getMenuHandler:          getMenuHandler,
	}
}

// RegisterRoutes mounts the handlers on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/orders/pending", s.GetPendingOrders)
	v1.GET("/couriers", s.GetCouriers)
	v1.GET("/menu", s.GetMenu)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetPendingOrders handles GET /api/v1/orders/pending - the order queue, oldest first.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve pending orders")
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetCouriers handles GET /api/v1/couriers. ?available=true lists only
// couriers that could take an order now.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetCouriersQuery()
	switch ctx.QueryParam("available") {
	case "", "false":
	case "true":
		query = queries.NewGetAvailableCouriersQuery()
	default:
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "available must be true or false",
		})
	}

	couriers, err := s.getCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve couriers")
	}
	return ctx.JSON(http.StatusOK, couriers)
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve menu")
	}
	return ctx.JSON(http.StatusOK, items)
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
