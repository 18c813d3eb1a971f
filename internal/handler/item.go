package handler

import (
	"net/http"

	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ItemHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

func NewItemHandler(catalogService service.CatalogService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.catalogService.ListItems(ctx)
	if err != nil {
		return toHTTPError(h.logger, "list items", err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	item, err := h.catalogService.AddItem(ctx, service.NewItem{
		Name:        req.Name,
		Description: req.Description,
		Emoji:       req.Emoji,
		Price:       req.Price,
		Options:     req.Options,
	})
	if err != nil {
		return toHTTPError(h.logger, "add item", err)
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) ToggleStock(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.catalogService.ToggleStock(ctx, c.Param("id"))
	if err != nil {
		return toHTTPError(h.logger, "toggle stock", err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) UpdatePrice(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	item, err := h.catalogService.UpdatePrice(ctx, c.Param("id"), req.Price)
	if err != nil {
		return toHTTPError(h.logger, "update price", err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) UpdateOptions(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateOptionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	item, err := h.catalogService.UpdateOptions(ctx, c.Param("id"), req.Options)
	if err != nil {
		return toHTTPError(h.logger, "update options", err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) UpdateDescription(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	item, err := h.catalogService.UpdateDescription(ctx, c.Param("id"), req.Description)
	if err != nil {
		return toHTTPError(h.logger, "update description", err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogService.DeleteItem(ctx, c.Param("id")); err != nil {
		return toHTTPError(h.logger, "delete item", err)
	}

	return c.NoContent(http.StatusNoContent)
}
