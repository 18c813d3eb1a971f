package server

import (
	"context"
	"net/http"

	"bakery-storefront/internal/client"
	"bakery-storefront/internal/handler"
	appmw "bakery-storefront/internal/middleware"
	"bakery-storefront/internal/service"
	"bakery-storefront/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Services struct {
	Catalog    service.CatalogService
	Orders     service.OrderService
	Settings   service.SettingService
	Storefront service.StorefrontService
	Notifier   service.OrderNotifier
}

type Server struct {
	echo              *echo.Echo
	sessions          *session.Store
	storefrontHandler *handler.StorefrontHandler
	sessionHandler    *handler.SessionHandler
	checkoutHandler   *handler.CheckoutHandler
	itemHandler       *handler.ItemHandler
	orderHandler      *handler.OrderHandler
	settingHandler    *handler.SettingHandler
	emailHandler      *handler.EmailHandler
}

func NewServer(
	services Services,
	sessions *session.Store,
	emailClient client.EmailClient,
	adminPassword string,
	logger *zap.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:              e,
		sessions:          sessions,
		storefrontHandler: handler.NewStorefrontHandler(services.Storefront, services.Catalog, services.Settings, sessions, logger),
		sessionHandler:    handler.NewSessionHandler(sessions, services.Catalog, services.Settings, adminPassword, logger),
		checkoutHandler:   handler.NewCheckoutHandler(sessions, services.Orders, logger),
		itemHandler:       handler.NewItemHandler(services.Catalog, logger),
		orderHandler:      handler.NewOrderHandler(services.Orders, sessions, logger),
		settingHandler:    handler.NewSettingHandler(services.Settings, logger),
		emailHandler:      handler.NewEmailHandler(emailClient, services.Notifier, services.Settings, logger),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.GET("/menu", s.storefrontHandler.GetMenu)
	api.GET("/availability", s.storefrontHandler.GetAvailability)
	api.Any("/send-email", s.emailHandler.SendEmail)

	// -------- visitor session --------
	visitor := api.Group("", appmw.Session(s.sessions))
	visitor.GET("/storefront", s.storefrontHandler.GetStorefront)
	visitor.GET("/session", s.sessionHandler.GetSession)
	visitor.PUT("/session/form", s.sessionHandler.UpdateForm)
	visitor.PUT("/session/requested-date", s.sessionHandler.SetRequestedDate)
	visitor.PUT("/session/view", s.sessionHandler.SetView)
	visitor.DELETE("/session/error", s.sessionHandler.DismissError)
	visitor.POST("/session/admin", s.sessionHandler.EnterAdmin)
	visitor.DELETE("/session/admin", s.sessionHandler.ExitAdmin)
	visitor.POST("/cart/items", s.sessionHandler.AddCartItem)
	visitor.PATCH("/cart/items/:key", s.sessionHandler.UpdateCartItem)
	visitor.DELETE("/cart/items/:key", s.sessionHandler.RemoveCartItem)
	visitor.POST("/checkout", s.checkoutHandler.Checkout)

	// -------- admin --------
	admin := visitor.Group("/admin", appmw.AdminOnly(s.sessions))

	admin.PUT("/session/orders-view", s.sessionHandler.SetOrdersView)
	admin.POST("/session/calendar-month", s.sessionHandler.ShiftMonth)
	admin.PUT("/session/editing", s.sessionHandler.StartEditing)
	admin.DELETE("/session/editing/:field", s.sessionHandler.StopEditing)

	admin.GET("/items", s.itemHandler.ListItems)
	admin.POST("/items", s.itemHandler.CreateItem)
	admin.POST("/items/:id/stock", s.itemHandler.ToggleStock)
	admin.PUT("/items/:id/price", s.itemHandler.UpdatePrice)
	admin.PUT("/items/:id/options", s.itemHandler.UpdateOptions)
	admin.PUT("/items/:id/description", s.itemHandler.UpdateDescription)
	admin.DELETE("/items/:id", s.itemHandler.DeleteItem)

	admin.GET("/orders", s.orderHandler.ListOrders)
	admin.GET("/orders/calendar", s.orderHandler.OrderCalendar)
	admin.GET("/orders/stream", s.orderHandler.StreamOrders)
	admin.POST("/orders/:id/fulfilled", s.orderHandler.ToggleFulfilled)
	admin.POST("/orders/:id/paid", s.orderHandler.TogglePaid)
	admin.DELETE("/orders/:id", s.orderHandler.DeleteOrder)

	admin.GET("/blocked-dates", s.settingHandler.GetBlockedDates)
	admin.POST("/blocked-dates/:date", s.settingHandler.ToggleBlockedDate)
	admin.GET("/settings/admin-email", s.settingHandler.GetAdminEmail)
	admin.PUT("/settings/admin-email", s.settingHandler.SaveAdminEmail)
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Close drops open connections, including order streams that outlive Shutdown.
func (s *Server) Close() error {
	return s.echo.Close()
}
