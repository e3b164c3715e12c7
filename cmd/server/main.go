package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/internal/auth"
	"github.com/leandrocorretor/realty/internal/images"
	"github.com/leandrocorretor/realty/internal/leads"
	"github.com/leandrocorretor/realty/internal/properties"
	"github.com/leandrocorretor/realty/internal/site"
	"github.com/leandrocorretor/realty/internal/web"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/leandrocorretor/realty/pkg/database"
	"github.com/leandrocorretor/realty/pkg/events"
	"github.com/leandrocorretor/realty/pkg/health"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/middleware"
	"github.com/leandrocorretor/realty/pkg/ratelimit"
	"github.com/leandrocorretor/realty/pkg/redis"
	"github.com/leandrocorretor/realty/pkg/storage"
	"github.com/leandrocorretor/realty/pkg/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	serviceName    = "realty"
	serviceVersion = "1.0.0"
)

// throttled routes share one budget per client IP
var throttledRoutes = []string{
	"POST /contact",
	"POST /api/v1/leads",
	"POST /admin/login",
	"POST /api/v1/auth/google",
}

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	flushSentry, err := tracing.InitSentry(cfg.Server.ServiceName, cfg.Server.Environment, cfg.Sentry)
	if err != nil {
		logger.Warn("Sentry disabled", zap.Error(err))
		flushSentry = func() {}
	}
	defer flushSentry()

	shutdownTracing, err := tracing.Init(ctx, cfg.Server.ServiceName, cfg.Server.Environment, cfg.Tracing)
	if err != nil {
		logger.Warn("Tracing disabled", zap.Error(err))
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	// Schema migrations run over database/sql; the services use a pgx pool
	sqlDB, err := database.OpenSQL(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.Migrate(sqlDB); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	pool, err := database.NewPostgresPool(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(pool)

	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	uploader := images.NewUploader(store, cfg.Storage.MaxFileMB, cfg.Storage.AllowedTypes)

	publisher, err := events.New(cfg.NATS, cfg.Server.ServiceName)
	if err != nil {
		logger.Warn("Event publishing disabled", zap.Error(err))
		publisher = events.NoopPublisher{}
	}
	defer publisher.Close()

	// Services
	propertyService := properties.NewService(properties.NewRepository(pool), redisClient, uploader, publisher)
	siteService := site.NewService(cfg.Site, redisClient)

	var sms leads.SMSSender
	if tw := leads.NewTwilioClient(cfg.Twilio); tw != nil {
		sms = tw
	} else {
		logger.Info("SMS notifications disabled")
	}
	leadService := leads.NewService(leads.NewRepository(pool), propertyService, sms, cfg.Twilio.BrokerPhone, publisher)

	var verifier auth.TokenVerifier
	if !cfg.BypassAuth() {
		gv, err := auth.NewGoogleVerifier(ctx, cfg.Auth.GoogleClientID)
		if err != nil {
			logger.Fatal("Failed to initialize Google verifier", zap.Error(err))
		}
		verifier = gv
	} else {
		logger.Warn("Admin login bypass enabled", zap.String("email", cfg.Auth.MockEmail))
	}
	authService := auth.NewService(auth.NewRepository(pool), verifier, redisClient, auth.OptionsFromConfig(cfg))

	// Router
	limiter := ratelimit.NewLimiter(redisClient.Client, cfg.RateLimit)
	checks := map[string]func() error{
		"postgres": health.NewCachedChecker(health.CompositeChecker("postgres", map[string]health.Checker{
			"sql":  health.DatabaseChecker(sqlDB),
			"pool": health.PingChecker("pgx", pool),
		}), 5*time.Second).Check,
		"redis": health.NewCachedChecker(health.RedisChecker(redisClient.Client), 5*time.Second).Check,
	}
	router := newRouter(cfg, limiter, checks)

	if local, ok := store.(*storage.LocalStorage); ok {
		router.Static(local.BaseURL, local.Root)
	}

	cookie := auth.CookieOptions{Name: cfg.JWT.CookieName, Secure: cfg.IsProduction()}
	requireAdmin := middleware.AuthMiddleware(authService, middleware.AuthConfig{CookieName: cfg.JWT.CookieName})

	properties.NewHandler(propertyService).RegisterRoutes(router, requireAdmin)
	leads.NewHandler(leadService).RegisterRoutes(router, requireAdmin)
	site.NewHandler(siteService).RegisterRoutes(router)
	auth.NewHandler(authService, cookie).RegisterRoutes(router, requireAdmin)
	web.NewHandler(propertyService, siteService, leadService, authService, web.Options{
		GoogleClientID: cfg.Auth.GoogleClientID,
		Cookie:         cookie,
	}).RegisterRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("service", cfg.Server.ServiceName),
			zap.String("port", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

// newRouter builds the engine with the shared middleware chain and the
// operational endpoints. Feature handlers register their routes on it.
func newRouter(cfg *config.Config, limiter *ratelimit.Limiter, checks map[string]func() error) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.Language(cfg.Site.DefaultLanguage))
	router.Use(middleware.Sentry())
	router.Use(middleware.SentryScope())
	router.Use(otelgin.Middleware(cfg.Server.ServiceName))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(cfg.Server.ServiceName))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.MaxBodySize(int64(cfg.Server.MaxBodyMB) << 20))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.CorrelationIDHeader}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.Use(ratelimit.ForRoutes(limiter, "public_write", throttledRoutes...))
	router.Use(middleware.APITimeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	router.GET("/healthz", common.HealthCheck(cfg.Server.ServiceName, serviceVersion))
	router.GET("/readyz", common.HealthCheckWithDeps(cfg.Server.ServiceName, serviceVersion, checks))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
