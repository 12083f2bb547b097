package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"campusride/internal/config"
	handlers "campusride/internal/handlers/shared"
	"campusride/internal/repositories/memory"
	"campusride/internal/services"
	"campusride/pkg/cache"
	"campusride/pkg/logger"
	"campusride/pkg/pubsub"
	"campusride/pkg/websocket"
	"campusride/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.Logging.Level),
		Format:  cfg.Logging.Format,
		Output:  cfg.Logging.Output,
		Caller:  cfg.Logging.Caller,
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Change bus and realtime fan-out
	bus := pubsub.NewBus(cfg.Realtime.SubscriberBuffer)
	wsHandler := websocket.NewHandler(cfg.WebSocket.HandlerConfig(), appLogger.WithField("component", "websocket"))
	go services.NewRealtime(bus, wsHandler, appLogger.WithField("component", "realtime")).Run(ctx)

	notifier := services.MultiNotifier{
		services.NewLogNotifier(appLogger.WithField("component", "notifier")),
		services.NewHubNotifier(wsHandler),
	}

	// Services
	rideService := services.NewRideService(memory.NewRideRepository(), notifier, bus, appLogger.WithField("component", "rides"))
	chatService := services.NewChatService(memory.NewChatRepository(), notifier, bus, appLogger.WithField("component", "chat"))
	eventService := services.NewEventService(memory.NewEventRepository(), notifier, bus, appLogger.WithField("component", "events"))
	matchingService := services.NewMatchingService(rideService, chatService, appLogger.WithField("component", "matching"))
	analyticsService := services.NewAnalyticsService(nil)

	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedisCache(cfg.Redis.CacheConfig())
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to redis")
		}
		go services.NewRedisRelay(bus, redisCache, cfg.Redis.ChannelPrefix, appLogger.WithField("component", "redis_relay")).Run(ctx)
		analyticsService = services.NewCachedAnalyticsService(analyticsService, redisCache, cfg.Realtime.DashboardTTL, appLogger.WithField("component", "dashboard"))
		appLogger.Infof("Relaying change events to redis at %s", cfg.Redis.CacheConfig().Addr())
	}

	// Initialize handlers
	router := routes.NewRouter(routes.RouterOptions{
		AllowedOrigins: cfg.Security.CORSAllowedOrigins,
		WebSocketPath:  cfg.WebSocket.Path,
		Version:        cfg.App.Version,
	}, routes.Handlers{
		Ride:      handlers.NewRideHandler(rideService, matchingService),
		Chat:      handlers.NewChatHandler(chatService, matchingService),
		Event:     handlers.NewEventHandler(eventService),
		Dashboard: handlers.NewDashboardHandler(analyticsService),
		WebSocket: wsHandler.HandleWebSocket,
	}, appLogger)
	if len(cfg.Security.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
			appLogger.WithError(err).Warn("Ignoring invalid trusted proxies")
		}
	}

	server := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Starting %s %s on %s", cfg.App.Name, cfg.App.Version, server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Graceful shutdown failed")
	}

	bus.Close()
	wsHandler.Close()
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			appLogger.WithError(err).Warn("Failed to close redis client")
		}
	}
}
