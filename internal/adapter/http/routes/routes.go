package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "travel_backoffice/docs" // This will be auto-generated
	"travel_backoffice/internal/adapter/http/middleware"
	"travel_backoffice/internal/config"
	"travel_backoffice/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathAPI     = "/api"
	PathMetrics = "/metrics"

	shutdownTimeout = 10 * time.Second
)

var router = gin.New()

// Run will start the server and block until ctx is cancelled and in-flight
// requests have drained.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	m := metrics.New()

	setMiddlewares(logger, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(m.Handler()))

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	deps, err := buildDependencies(workersCtx, cfg, logger, m)
	if err != nil {
		return err
	}
	getRoutes(cfg, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("[routes][http] listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("[routes][http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[routes][http] graceful shutdown failed", zap.Error(err))
	}

	stopWorkers()
	select {
	case <-deps.done:
	case <-shutdownCtx.Done():
		logger.Warn("[routes][workers] background workers did not stop in time")
	}
	return nil
}

func getRoutes(cfg *config.Config, deps *dependencies) {
	requireAuth := middleware.AuthRequired(deps.authUseCase)
	optionalAuth := middleware.OptionalAuth(deps.authUseCase)

	api := router.Group(PathAPI)
	addPingRoutes(api, deps.health)
	addAuthRoutes(api, deps.auth)
	addTravelPackageRoutes(api, deps.travelPackages, requireAuth)
	addBookingRoutes(api, deps.bookings, requireAuth, optionalAuth)
	addUserRoutes(api, deps.users, requireAuth)
	addUploadRoutes(api, deps.uploads, requireAuth)

	// Rotas de diagnostico SMTP, nunca expostas em producao
	if !cfg.IsProduction() {
		addTestRoutes(api, deps.testEmail)
	}
}

func setMiddlewares(logger *zap.Logger, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics(m))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[routes][http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
