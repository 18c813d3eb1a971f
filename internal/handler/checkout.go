package handler

import (
	"errors"
	"net/http"

	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/middleware"
	"bakery-storefront/internal/service"
	"bakery-storefront/internal/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const submitFailedMessage = "Failed to submit order. Please try again."

type CheckoutHandler struct {
	sessions     *session.Store
	orderService service.OrderService
	logger       *zap.Logger
}

func NewCheckoutHandler(sessions *session.Store, orderService service.OrderService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		sessions:     sessions,
		orderService: orderService,
		logger:       logger,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	id := middleware.SessionID(c)

	state, ok := h.sessions.Get(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, session.ErrNotFound.Error())
	}

	order, err := h.orderService.Submit(ctx, state.Form, state.Cart)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrIncompleteOrder),
		errors.Is(err, service.ErrDateUnavailable),
		errors.Is(err, session.ErrInvalidField):
		return toHTTPError(h.logger, "submit order", err)
	default:
		h.logger.Error("submit order", zap.String("session_id", id), zap.Error(err))
		if _, derr := h.sessions.Dispatch(id, session.SubmissionFailed{Message: submitFailedMessage}); derr != nil {
			h.logger.Warn("record submission failure", zap.Error(derr))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, submitFailedMessage)
	}

	next, err := h.sessions.Dispatch(id, session.OrderSubmitted{})
	if err != nil {
		return toHTTPError(h.logger, "clear cart", err)
	}

	return c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Order:   order,
		Session: next,
	})
}
