package routes

import (
	"fitconsole/api/handlers"
	"strings"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

// NewRouter mounts the API group on the base path, the root when empty.
func NewRouter(engine *gin.Engine, basePath string) *Router {
	basePath = "/" + strings.Trim(basePath, "/")

	return &Router{
		api:    engine.Group(basePath),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	r.api.GET("/healthz", handlers.Healthz)

	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.MemberHandler:
			r.registerMemberHandler(handler)
		case *handlers.PaymentHandler:
			r.registerPaymentHandler(handler)
		case *handlers.AccessLogHandler:
			r.registerAccessLogHandler(handler)
		case *handlers.DashboardHandler:
			r.registerDashboardHandler(handler)
		case *handlers.SeedHandler:
			r.registerSeedHandler(handler)
		}
	}
}

// Register the member handler.
func (r *Router) registerMemberHandler(handler *handlers.MemberHandler) {
	members := r.api.Group("/members")
	{
		members.GET("", handler.ListMembers)
		members.POST("", handler.CreateMember)
	}
}

// Register the payment handler.
func (r *Router) registerPaymentHandler(handler *handlers.PaymentHandler) {
	payments := r.api.Group("/payments")
	{
		payments.GET("", handler.ListPayments)
		payments.POST("", handler.CreatePayment)
	}
}

// Register the access log handler.
func (r *Router) registerAccessLogHandler(handler *handlers.AccessLogHandler) {
	accessLogs := r.api.Group("/access-logs")
	{
		accessLogs.GET("", handler.ListAccessLogs)
		accessLogs.POST("", handler.CreateAccessLog)
	}
}

// Register the dashboard handler.
func (r *Router) registerDashboardHandler(handler *handlers.DashboardHandler) {
	stats := r.api.Group("/dashboard-stats")
	{
		stats.GET("", handler.GetStats)
		stats.GET("/history", handler.GetHistory)
	}
}

// Register the seed handler.
func (r *Router) registerSeedHandler(handler *handlers.SeedHandler) {
	r.api.POST("/seed-data", handler.SeedData)
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
