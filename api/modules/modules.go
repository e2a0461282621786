package modules

import (
	"fitconsole/api/cache"
	"fitconsole/api/handlers"
	resourceservice "fitconsole/api/services/resource"
	seedservice "fitconsole/api/services/seed"
	statsservice "fitconsole/api/services/stats"
	"fitconsole/pkg/kv"
	"fitconsole/pkg/logger"
	"time"
)

// Dependencies shared by every handler.
type ModuleDependencies struct {
	Store      kv.Store
	StatsCache *cache.StatsCache
	Logger     logger.Interface
	Now        func() time.Time
}

// Module containing the necessary handlers.
type Module struct {
	MemberHandler    *handlers.MemberHandler
	PaymentHandler   *handlers.PaymentHandler
	AccessLogHandler *handlers.AccessLogHandler
	DashboardHandler *handlers.DashboardHandler
	SeedHandler      *handlers.SeedHandler
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	// The resource handlers share one service.
	resourceService := resourceservice.NewResourceService(&resourceservice.ResourceServiceDeps{
		Store:      deps.Store,
		StatsCache: deps.StatsCache,
		Logger:     deps.Logger,
		Now:        deps.Now,
	})

	return &Module{
		MemberHandler: handlers.NewMemberHandler(&handlers.MemberHandlerDependencies{
			ResourceService: resourceService,
			Logger:          deps.Logger,
		}),
		PaymentHandler: handlers.NewPaymentHandler(&handlers.PaymentHandlerDependencies{
			ResourceService: resourceService,
			Logger:          deps.Logger,
		}),
		AccessLogHandler: handlers.NewAccessLogHandler(&handlers.AccessLogHandlerDependencies{
			ResourceService: resourceService,
			Logger:          deps.Logger,
		}),
		DashboardHandler: initializeDashboardHandler(deps),
		SeedHandler:      initializeSeedHandler(deps),
	}
}

// Handlers lists every handler for the router.
func (m *Module) Handlers() []any {
	return []any{
		m.MemberHandler,
		m.PaymentHandler,
		m.AccessLogHandler,
		m.DashboardHandler,
		m.SeedHandler,
	}
}

func initializeDashboardHandler(deps *ModuleDependencies) *handlers.DashboardHandler {
	statsService := statsservice.NewStatsService(&statsservice.StatsServiceDeps{
		Store:      deps.Store,
		StatsCache: deps.StatsCache,
		Logger:     deps.Logger,
		Now:        deps.Now,
	})

	return handlers.NewDashboardHandler(&handlers.DashboardHandlerDependencies{
		StatsService: statsService,
		Logger:       deps.Logger,
	})
}

func initializeSeedHandler(deps *ModuleDependencies) *handlers.SeedHandler {
	seedService := seedservice.NewSeedService(&seedservice.SeedServiceDeps{
		Store:      deps.Store,
		StatsCache: deps.StatsCache,
		Logger:     deps.Logger,
		Now:        deps.Now,
	})

	return handlers.NewSeedHandler(&handlers.SeedHandlerDependencies{
		SeedService: seedService,
		Logger:      deps.Logger,
	})
}
