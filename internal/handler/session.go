package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/middleware"
	"bakery-storefront/internal/service"
	"bakery-storefront/internal/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SessionHandler struct {
	sessions       *session.Store
	catalogService service.CatalogService
	settingService service.SettingService
	adminPassword  string
	logger         *zap.Logger
}

func NewSessionHandler(
	sessions *session.Store,
	catalogService service.CatalogService,
	settingService service.SettingService,
	adminPassword string,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions:       sessions,
		catalogService: catalogService,
		settingService: settingService,
		adminPassword:  adminPassword,
		logger:         logger,
	}
}

// dispatch applies the actions to the caller's session and replies with the new state.
func (h *SessionHandler) dispatch(c echo.Context, actions ...session.Action) error {
	state, err := h.sessions.Dispatch(middleware.SessionID(c), actions...)
	if err != nil {
		return toHTTPError(h.logger, "update session", err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	state, ok := h.sessions.Get(middleware.SessionID(c))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, session.ErrNotFound.Error())
	}
	return c.JSON(http.StatusOK, state)
}

func (h *SessionHandler) AddCartItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.ItemID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "item_id is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, option, err := h.catalogService.ResolveForCart(ctx, req.ItemID, req.SelectedOption)
	if err != nil {
		return toHTTPError(h.logger, "resolve cart item", err)
	}

	return h.dispatch(c, session.AddToCart{Item: item, Option: option, Quantity: req.Quantity})
}

func lineKeyParam(c echo.Context) (string, error) {
	key, err := url.PathUnescape(c.Param("key"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid line key")
	}
	return key, nil
}

func (h *SessionHandler) UpdateCartItem(c echo.Context) error {
	key, err := lineKeyParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	return h.dispatch(c, session.UpdateQuantity{Key: key, Quantity: req.Quantity})
}

func (h *SessionHandler) RemoveCartItem(c echo.Context) error {
	key, err := lineKeyParam(c)
	if err != nil {
		return err
	}

	return h.dispatch(c, session.RemoveLine{Key: key})
}

func (h *SessionHandler) UpdateForm(c echo.Context) error {
	var req dto.UpdateFormRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	var actions []session.Action
	if req.CustomerName != nil {
		actions = append(actions, session.SetCustomerName{Value: *req.CustomerName})
	}
	if req.CustomerEmail != nil {
		actions = append(actions, session.SetCustomerEmail{Value: *req.CustomerEmail})
	}
	if req.FulfillmentType != nil {
		actions = append(actions, session.SetFulfillmentType{Value: *req.FulfillmentType})
	}
	if req.DeliveryAddress != nil {
		actions = append(actions, session.SetDeliveryAddress{Value: *req.DeliveryAddress})
	}
	if req.Note != nil {
		actions = append(actions, session.SetNote{Value: *req.Note})
	}

	return h.dispatch(c, actions...)
}

func (h *SessionHandler) SetRequestedDate(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RequestedDateRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	blocked, err := h.settingService.BlockedDates(ctx)
	if err != nil {
		return toHTTPError(h.logger, "get blocked dates", err)
	}

	return h.dispatch(c, session.SetRequestedDate{
		Date:    req.Date,
		Blocked: blocked,
		Now:     h.sessions.Now(),
	})
}

func (h *SessionHandler) SetView(c echo.Context) error {
	var req dto.ViewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	return h.dispatch(c, session.SetView{View: req.View})
}

func (h *SessionHandler) SetOrdersView(c echo.Context) error {
	var req dto.OrdersViewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	var actions []session.Action
	if req.Mode != nil {
		actions = append(actions, session.SetOrdersViewMode{Mode: *req.Mode})
	}
	if req.StatusFilter != nil {
		actions = append(actions, session.SetStatusFilter{Filter: *req.StatusFilter})
	}
	if req.SelectedOrderID != nil {
		actions = append(actions, session.SelectOrder{OrderID: *req.SelectedOrderID})
	}

	return h.dispatch(c, actions...)
}

func (h *SessionHandler) ShiftMonth(c echo.Context) error {
	var req dto.ShiftMonthRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	switch req.Calendar {
	case "availability":
		return h.dispatch(c, session.ShiftCalendarMonth{Delta: req.Delta})
	case "orders":
		return h.dispatch(c, session.ShiftOrderCalendarMonth{Delta: req.Delta})
	}
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown calendar %q", req.Calendar))
}

func (h *SessionHandler) StartEditing(c echo.Context) error {
	var req dto.EditingRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	return h.dispatch(c, session.StartEditing{Field: req.Field, ItemID: req.ItemID, Draft: req.Draft})
}

func (h *SessionHandler) StopEditing(c echo.Context) error {
	return h.dispatch(c, session.StopEditing{Field: session.EditField(c.Param("field"))})
}

func (h *SessionHandler) DismissError(c echo.Context) error {
	return h.dispatch(c, session.DismissError{})
}

func (h *SessionHandler) EnterAdmin(c echo.Context) error {
	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	return h.dispatch(c, session.EnterAdmin{Password: req.Password, Secret: h.adminPassword})
}

func (h *SessionHandler) ExitAdmin(c echo.Context) error {
	return h.dispatch(c, session.ExitAdmin{})
}
