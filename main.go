package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"venuebook/config"
	"venuebook/cron"
	"venuebook/database"
	bookingRepoPkg "venuebook/database/repository/booking"
	eventRepoPkg "venuebook/database/repository/event"
	"venuebook/handlers"
	"venuebook/middleware"
	"venuebook/routes"
	"venuebook/services/booking"
	"venuebook/services/event"
	"venuebook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// reminder queue.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	cron.InitReminderWorker()

	// services.
	eventService := &event.DefaultEventService{
		Repo: eventRepo,
	}
	bookingService := &booking.DefaultBookingSessionService{
		EventRepo:   eventRepo,
		BookingRepo: bookingRepo,
		Cache:       utils.GetSessionCacheClient(),
		Queue:       queueClient,
		Pricing:     config.Pricing(),
	}

	eventHandler := handlers.NewEventHandler(eventService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	routes.RegisterRoutes(router, eventHandler, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
