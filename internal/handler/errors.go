package handler

import (
	"errors"
	"net/http"

	"bakery-storefront/internal/calendar"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/service"
	"bakery-storefront/internal/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// toHTTPError maps domain errors onto status codes. Anything unknown is
// logged and reported as a bare 500 so store errors never reach the client.
func toHTTPError(logger *zap.Logger, msg string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, session.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrIncompleteOrder),
		errors.Is(err, service.ErrDateUnavailable):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrItemOutOfStock):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrAdminRequired),
		errors.Is(err, session.ErrWrongPassword):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrInvalidOption),
		errors.Is(err, model.ErrInvalidStatusFilter),
		errors.Is(err, calendar.ErrInvalid),
		errors.Is(err, calendar.ErrBlocked),
		errors.Is(err, calendar.ErrTooSoon),
		errors.Is(err, session.ErrInvalidView),
		errors.Is(err, session.ErrInvalidQuantity),
		errors.Is(err, session.ErrInvalidField):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	logger.Error(msg, zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError)
}
