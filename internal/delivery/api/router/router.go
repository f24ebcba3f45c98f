// Package router registers the API routes and the guard of each area.
package router

import (
	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/router/handler"
	"canteen/internal/usecase/guard"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	AccountHandler      *handler.AccountHandler
	MenuHandler         *handler.MenuHandler
	OrderHandler        *handler.OrderHandler
	NotificationHandler *handler.NotificationHandler
	SupportHandler      *handler.SupportHandler
	ReportHandler       *handler.ReportHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	accountHandler      *handler.AccountHandler
	menuHandler         *handler.MenuHandler
	orderHandler        *handler.OrderHandler
	notificationHandler *handler.NotificationHandler
	supportHandler      *handler.SupportHandler
	reportHandler       *handler.ReportHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		accountHandler:      params.AccountHandler,
		menuHandler:         params.MenuHandler,
		orderHandler:        params.OrderHandler,
		notificationHandler: params.NotificationHandler,
		supportHandler:      params.SupportHandler,
		reportHandler:       params.ReportHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every route resolves the caller's session; each group then applies its guard.
	e.Use(r.authMiddleware.Authenticate)
	signedIn := r.authMiddleware.Require(guard.AreaAuthenticated)
	user := r.authMiddleware.Require(guard.AreaUser)
	admin := r.authMiddleware.Require(guard.AreaAdmin)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/admin/login", r.authHandler.AdminLogin)
		authGroup.POST("/password-reset", r.authHandler.PasswordReset)
		authGroup.GET("/action", r.authHandler.ApplyAction)
		authGroup.POST("/action", r.authHandler.ApplyAction)
		authGroup.GET("/landing", r.authHandler.Landing)
		authGroup.POST("/verification", r.authHandler.SendVerification, signedIn)
		authGroup.GET("/status", r.authHandler.Status, signedIn)
		authGroup.POST("/logout", r.authHandler.Logout, signedIn)
	}

	accountGroup := e.Group("/account", signedIn)
	{
		accountGroup.GET("", r.accountHandler.GetProfile)
		accountGroup.PATCH("", r.accountHandler.Rename)
	}

	// Customer area: verified email required.
	menuGroup := e.Group("/menu", user)
	{
		menuGroup.GET("", r.menuHandler.List)
		menuGroup.GET("/stream", r.menuHandler.Stream)
	}

	ordersGroup := e.Group("/orders", user)
	{
		ordersGroup.POST("", r.orderHandler.Place)
		ordersGroup.GET("/mine", r.orderHandler.Mine)
		ordersGroup.GET("/mine/stream", r.orderHandler.StreamMine)
		ordersGroup.GET("/:id/qrcode", r.orderHandler.QRCode)
	}

	notificationsGroup := e.Group("/notifications", user)
	{
		notificationsGroup.GET("", r.notificationHandler.Inbox)
		notificationsGroup.POST("/read", r.notificationHandler.MarkRead)
		notificationsGroup.GET("/stream", r.notificationHandler.Stream)
	}

	supportGroup := e.Group("/support", user)
	{
		supportGroup.GET("/orders", r.supportHandler.EligibleOrders)
		supportGroup.GET("/tickets", r.supportHandler.MyTickets)
		supportGroup.POST("/tickets", r.supportHandler.Create)
		supportGroup.GET("/tickets/stream", r.supportHandler.StreamMyTickets)
		supportGroup.POST("/tickets/:id/messages", r.supportHandler.Reply)
	}

	// Admin area: privileged profile required.
	adminGroup := e.Group("/admin", admin)
	{
		adminGroup.GET("/orders/pending", r.orderHandler.Pending)
		adminGroup.GET("/orders/pending/stream", r.orderHandler.StreamPending)
		adminGroup.POST("/orders/scan", r.orderHandler.Scan)
		adminGroup.POST("/orders/:id/ready", r.orderHandler.MarkReady)
		adminGroup.POST("/orders/:id/cancel", r.orderHandler.Cancel)
		adminGroup.POST("/orders/:id/payment", r.orderHandler.SetPayment)

		adminGroup.POST("/menu", r.menuHandler.Create)
		adminGroup.PUT("/menu/:id", r.menuHandler.Update)
		adminGroup.DELETE("/menu/:id", r.menuHandler.Delete)

		adminGroup.GET("/payments", r.reportHandler.Payments)
		adminGroup.GET("/payments/stream", r.reportHandler.StreamPayments)
		adminGroup.GET("/dashboard", r.reportHandler.Dashboard)
		adminGroup.GET("/dashboard/stream", r.reportHandler.StreamDashboard)

		adminGroup.GET("/users", r.accountHandler.ListUsers)
		adminGroup.GET("/users/stream", r.accountHandler.StreamUsers)
		adminGroup.POST("/users/:id/admin", r.accountHandler.SetAdmin)

		adminGroup.GET("/support/tickets", r.supportHandler.AllTickets)
		adminGroup.GET("/support/tickets/stream", r.supportHandler.StreamAllTickets)
		adminGroup.POST("/support/tickets/:id/messages", r.supportHandler.Reply)
		adminGroup.POST("/support/tickets/:id/status", r.supportHandler.SetStatus)
	}
}
