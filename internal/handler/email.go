package handler

import (
	"net/http"
	"strings"

	"bakery-storefront/internal/client"
	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EmailHandler exposes order email dispatch as a standalone endpoint.
// Transport errors are logged and never returned to the caller.
type EmailHandler struct {
	emailClient    client.EmailClient
	notifier       service.OrderNotifier
	settingService service.SettingService
	logger         *zap.Logger
}

func NewEmailHandler(
	emailClient client.EmailClient,
	notifier service.OrderNotifier,
	settingService service.SettingService,
	logger *zap.Logger,
) *EmailHandler {
	return &EmailHandler{
		emailClient:    emailClient,
		notifier:       notifier,
		settingService: settingService,
		logger:         logger,
	}
}

func (h *EmailHandler) SendEmail(c echo.Context) error {
	ctx := c.Request().Context()

	if c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "Method not allowed"})
	}

	if !h.emailClient.Configured() {
		h.logger.Error("send email", zap.Error(client.ErrEmailNotConfigured))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Email not configured"})
	}

	var req dto.SendEmailRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("decode send email payload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to send email"})
	}

	// without an explicit address the admin alert goes to the stored one, or ADMIN_EMAIL
	adminEmail := strings.TrimSpace(req.AdminEmail)
	if adminEmail == "" {
		stored, err := h.settingService.AdminEmail(ctx)
		if err != nil {
			h.logger.Warn("load admin email", zap.Error(err))
		}
		adminEmail = stored
	}

	if err := h.notifier.SendOrderEmails(ctx, &req.Order, adminEmail); err != nil {
		h.logger.Error("send email", zap.String("order_id", req.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to send email"})
	}

	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
