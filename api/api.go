package main

import (
	"context"
	"errors"
	"fitconsole/api/cache"
	"fitconsole/api/middleware"
	"fitconsole/api/modules"
	"fitconsole/api/routes"
	"fitconsole/pkg/config"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/store"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const healthService = "fitconsole.Console"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't load the configuration: %v", err)
	}

	// Create the service logger.
	apiLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Couldn't create the logger: %v", err)
	}
	defer apiLogger.Close()
	if cfg.API.LogToStdout {
		apiLogger.WithMirror(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the configured key-value store.
	kvStore, err := store.Open(ctx, cfg, apiLogger)
	if err != nil {
		log.Fatalf("Couldn't open the store: %v", err)
	}
	defer kvStore.Close()

	memCache := cache.NewMemCache(time.Minute)
	defer memCache.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		Store:      kvStore,
		StatsCache: cache.NewStatsCache(memCache, cfg.API.StatsCacheTTL),
		Logger:     apiLogger,
	})

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.CORS(), middleware.RequestLogger(apiLogger))

	// Create a new router with the routes setup.
	router := routes.NewRouter(engine, cfg.API.BasePath)
	router.SetupRoutes(module.Handlers()...)

	server := &http.Server{
		Addr:    ":" + cfg.API.Port,
		Handler: router.Engine,
	}

	go func() {
		apiLogger.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve http: %v", err)
		}
	}()

	grpcServer, healthServer := startGRPCServer(cfg.API.GRPCPort, apiLogger)

	<-ctx.Done()
	handleShutdown(cfg, server, grpcServer, healthServer, apiLogger)
}

// Start the grpc server exposing the health check.
func startGRPCServer(port string, apiLogger logger.Interface) (*grpc.Server, *health.Server) {
	list, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Fatalf("Couldn't start the tcp server: %v", err)
	}

	grpcServer := grpc.NewServer()

	// Register the health check.
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		apiLogger.Infof("running gRPC health server on %s", list.Addr())
		if err := grpcServer.Serve(list); err != nil {
			apiLogger.Errorf("gRPC server stopped: %v", err)
		}
	}()

	return grpcServer, healthServer
}

// Handle the shutdown of the whole server.
func handleShutdown(cfg *config.Config, server *http.Server, grpcServer *grpc.Server, healthServer *health.Server, apiLogger *logger.NewLogger) {
	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		apiLogger.Errorf("couldn't shut the http server down: %v", err)
	}
	grpcServer.GracefulStop()

	apiLogger.Infof("api stopped")

	// Ship what is left of the log.
	if cfg.BucketEnabled() {
		key := logger.ObjectKey("api", time.Now())
		if err := apiLogger.UploadToS3Bucket(shutdownCtx, cfg.Bucket, key); err != nil {
			log.Printf("Couldn't upload the log: %v", err)
		}
	}
}
