package handler

import (
	"net/http"
	"strconv"
	"time"

	"bakery-storefront/internal/calendar"
	"bakery-storefront/internal/middleware"
	"bakery-storefront/internal/service"
	"bakery-storefront/internal/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const loadFailedMessage = "Failed to load data. Please refresh the page."

type StorefrontHandler struct {
	storefrontService service.StorefrontService
	catalogService    service.CatalogService
	settingService    service.SettingService
	sessions          *session.Store
	logger            *zap.Logger
}

func NewStorefrontHandler(
	storefrontService service.StorefrontService,
	catalogService service.CatalogService,
	settingService service.SettingService,
	sessions *session.Store,
	logger *zap.Logger,
) *StorefrontHandler {
	return &StorefrontHandler{
		storefrontService: storefrontService,
		catalogService:    catalogService,
		settingService:    settingService,
		sessions:          sessions,
		logger:            logger,
	}
}

func (h *StorefrontHandler) GetStorefront(c echo.Context) error {
	ctx := c.Request().Context()

	state, _ := h.sessions.Get(middleware.SessionID(c))

	storefront, err := h.storefrontService.Load(ctx, state.IsAdmin)
	if err != nil {
		h.logger.Error("load storefront", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, loadFailedMessage)
	}

	return c.JSON(http.StatusOK, storefront)
}

func (h *StorefrontHandler) GetMenu(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.catalogService.ListMenu(ctx)
	if err != nil {
		h.logger.Error("list menu", zap.Error(err))
		return echo.NewHTTPError(http.StatusServiceUnavailable, loadFailedMessage)
	}

	return c.JSON(http.StatusOK, items)
}

// yearMonthParams reads ?year=&month=, falling back to the month of now.
func yearMonthParams(c echo.Context, now time.Time) (int, time.Month, error) {
	year, month := now.Year(), now.Month()

	if raw := c.QueryParam("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 || y > 9999 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = y
	}
	if raw := c.QueryParam("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid month")
		}
		month = time.Month(m)
	}

	return year, month, nil
}

func (h *StorefrontHandler) GetAvailability(c echo.Context) error {
	ctx := c.Request().Context()
	now := h.sessions.Now()

	year, month, err := yearMonthParams(c, now)
	if err != nil {
		return err
	}

	blocked, err := h.settingService.BlockedDates(ctx)
	if err != nil {
		return toHTTPError(h.logger, "get blocked dates", err)
	}

	return c.JSON(http.StatusOK, calendar.AvailabilityMonth(year, month, blocked, now))
}
