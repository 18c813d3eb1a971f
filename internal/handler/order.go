package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bakery-storefront/internal/changefeed"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/service"
	"bakery-storefront/internal/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService service.OrderService
	sessions     *session.Store
	logger       *zap.Logger
}

func NewOrderHandler(orderService service.OrderService, sessions *session.Store, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		sessions:     sessions,
		logger:       logger,
	}
}

func statusFilterParam(c echo.Context) (model.StatusFilter, error) {
	filter, err := model.ParseStatusFilter(c.QueryParam("status"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return filter, nil
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	filter, err := statusFilterParam(c)
	if err != nil {
		return err
	}

	var orders []*model.Order
	if date := c.QueryParam("date"); date != "" {
		orders, err = h.orderService.ListForDate(ctx, date, filter)
	} else {
		orders, err = h.orderService.List(ctx, filter)
	}
	if err != nil {
		return toHTTPError(h.logger, "list orders", err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) OrderCalendar(c echo.Context) error {
	ctx := c.Request().Context()

	filter, err := statusFilterParam(c)
	if err != nil {
		return err
	}

	year, month, err := yearMonthParams(c, h.sessions.Now())
	if err != nil {
		return err
	}

	cal, err := h.orderService.Calendar(ctx, year, month, filter)
	if err != nil {
		return toHTTPError(h.logger, "order calendar", err)
	}

	return c.JSON(http.StatusOK, cal)
}

func (h *OrderHandler) ToggleFulfilled(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.ToggleFulfilled(ctx, c.Param("id"))
	if err != nil {
		return toHTTPError(h.logger, "toggle fulfilled", err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) TogglePaid(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.TogglePaid(ctx, c.Param("id"))
	if err != nil {
		return toHTTPError(h.logger, "toggle paid", err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.orderService.Delete(ctx, c.Param("id")); err != nil {
		return toHTTPError(h.logger, "delete order", err)
	}

	return c.NoContent(http.StatusNoContent)
}

type ordersEvent struct {
	Change *changefeed.Event `json:"change,omitempty"`
	Orders []*model.Order    `json:"orders"`
}

// StreamOrders pushes the full, filtered order list as server-sent events:
// once on connect and again after every change to any order.
func (h *OrderHandler) StreamOrders(c echo.Context) error {
	ctx := c.Request().Context()

	filter, err := statusFilterParam(c)
	if err != nil {
		return err
	}

	// subscribe before the first load so no change slips in between
	events := h.orderService.Watch(ctx)

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := h.pushOrders(ctx, w, filter, nil); err != nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := h.pushOrders(ctx, w, filter, &ev); err != nil {
				return nil
			}
		}
	}
}

func (h *OrderHandler) pushOrders(ctx context.Context, w *echo.Response, filter model.StatusFilter, change *changefeed.Event) error {
	orders, err := h.orderService.List(ctx, filter)
	if err != nil {
		// keep the stream open; the next change triggers another reload
		h.logger.Warn("reload orders for stream", zap.Error(err))
		return nil
	}

	data, err := json.Marshal(ordersEvent{Change: change, Orders: orders})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "event: orders\ndata: %s\n\n", data); err != nil {
		return err
	}
	w.Flush()
	return nil
}
