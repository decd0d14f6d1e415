package handler

import (
	"log/slog"
	"net/http"

	"voltstore/internal/delivery/http/response"
	"voltstore/internal/domain/entity"
	domainerrors "voltstore/internal/domain/errors"
	"voltstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Place creates a new order from the caller's items.
func (h *OrderHandler) Place(c echo.Context) error {
	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListByUser returns every order placed by a user.
func (h *OrderHandler) ListByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	orders, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ListByStatus returns every order in a lifecycle state.
func (h *OrderHandler) ListByStatus(c echo.Context) error {
	orders, err := h.uc.ListByStatus(c.Request().Context(), entity.OrderStatus(c.Param("status")))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FromOrders(orders))
}

// updateStatusRequest is the body of a status update.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an order to a new lifecycle state.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid order id")
	}

	var input updateStatusRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), id, entity.OrderStatus(input.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.FromOrder(order))
}
