package handler

import (
	"net/http"

	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SettingHandler struct {
	settingService service.SettingService
	logger         *zap.Logger
}

func NewSettingHandler(settingService service.SettingService, logger *zap.Logger) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
		logger:         logger,
	}
}

func (h *SettingHandler) GetBlockedDates(c echo.Context) error {
	ctx := c.Request().Context()

	dates, err := h.settingService.BlockedDates(ctx)
	if err != nil {
		return toHTTPError(h.logger, "get blocked dates", err)
	}

	return c.JSON(http.StatusOK, dto.BlockedDatesResponse{BlockedDates: dates})
}

func (h *SettingHandler) ToggleBlockedDate(c echo.Context) error {
	ctx := c.Request().Context()

	dates, err := h.settingService.ToggleBlockedDate(ctx, c.Param("date"))
	if err != nil {
		return toHTTPError(h.logger, "toggle blocked date", err)
	}

	return c.JSON(http.StatusOK, dto.BlockedDatesResponse{BlockedDates: dates})
}

func (h *SettingHandler) GetAdminEmail(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := h.settingService.AdminEmail(ctx)
	if err != nil {
		return toHTTPError(h.logger, "get admin email", err)
	}

	return c.JSON(http.StatusOK, dto.AdminEmailResponse{Email: email})
}

func (h *SettingHandler) SaveAdminEmail(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AdminEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	email, err := h.settingService.SaveAdminEmail(ctx, req.Email)
	if err != nil {
		return toHTTPError(h.logger, "save admin email", err)
	}

	return c.JSON(http.StatusOK, dto.AdminEmailResponse{Email: email})
}
