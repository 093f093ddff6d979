// Package main runs the conference management HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/boraai/conference-backend/config"
	"github.com/boraai/conference-backend/internal/events"
	"github.com/boraai/conference-backend/internal/feedback"
	"github.com/boraai/conference-backend/internal/middleware"
	"github.com/boraai/conference-backend/internal/payments"
	"github.com/boraai/conference-backend/internal/paymenttypes"
	"github.com/boraai/conference-backend/internal/people"
	"github.com/boraai/conference-backend/internal/registrations"
	"github.com/boraai/conference-backend/internal/reports"
	"github.com/boraai/conference-backend/internal/talks"
	"github.com/boraai/conference-backend/pkg/database"
	"github.com/boraai/conference-backend/pkg/redis"
	"github.com/boraai/conference-backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), int32(cfg.Database.MaxConns), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	exec := database.NewExecutor(pool)

	// Report cache is optional; without Redis every report hits the database.
	var reportCache *reports.Cache
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			logger.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()
		ttl := time.Duration(cfg.Reports.CacheTTLSeconds) * time.Second
		reportCache = reports.NewCache(rdb.Client, ttl, logger)
	}

	peopleHandler := people.NewHandler(people.NewRepository(exec))
	eventHandler := events.NewHandler(events.NewRepository(exec))
	talkHandler := talks.NewHandler(talks.NewRepository(exec))
	registrationHandler := registrations.NewHandler(registrations.NewRepository(exec))
	paymentHandler := payments.NewHandler(payments.NewRepository(exec))
	paymentTypeHandler := paymenttypes.NewHandler(paymenttypes.NewRepository(exec))
	feedbackHandler := feedback.NewHandler(feedback.NewRepository(exec))
	reportHandler := reports.NewHandler(reports.NewRepository(exec), reportCache)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// People
	router.POST("/people", peopleHandler.Create)
	router.GET("/people", peopleHandler.List)
	router.GET("/people/options", peopleHandler.Options)
	router.GET("/people/:id", peopleHandler.GetByID)
	router.PUT("/people/:id", peopleHandler.Update)
	router.DELETE("/people/:id", peopleHandler.Delete)

	// Events
	router.POST("/events", eventHandler.Create)
	router.GET("/events", eventHandler.List)
	router.GET("/events/options", eventHandler.Options)
	router.GET("/events/:id", eventHandler.GetByID)
	router.PUT("/events/:id", eventHandler.Update)
	router.DELETE("/events/:id", eventHandler.Delete)

	// Talks
	router.POST("/talks", talkHandler.Create)
	router.GET("/talks", talkHandler.List)
	router.GET("/talks/options", talkHandler.Options)
	router.GET("/talks/:id", talkHandler.GetByID)
	router.PUT("/talks/:id", talkHandler.Update)
	router.DELETE("/talks/:id", talkHandler.Delete)

	// Registrations (composite key: participant + talk)
	router.POST("/registrations", registrationHandler.Create)
	router.GET("/registrations", registrationHandler.List)
	router.GET("/registrations/:participant_id/:talk_id", registrationHandler.Get)
	router.DELETE("/registrations/:participant_id/:talk_id", registrationHandler.Delete)

	// Payments
	router.POST("/payments", paymentHandler.Create)
	router.GET("/payments", paymentHandler.List)
	router.GET("/payments/:id", paymentHandler.GetByID)
	router.PUT("/payments/:id", paymentHandler.Update)
	router.DELETE("/payments/:id", paymentHandler.Delete)

	// Payment types
	router.POST("/payment-types", paymentTypeHandler.Create)
	router.GET("/payment-types", paymentTypeHandler.List)
	router.GET("/payment-types/:id", paymentTypeHandler.GetByID)
	router.PUT("/payment-types/:id", paymentTypeHandler.Update)
	router.DELETE("/payment-types/:id", paymentTypeHandler.Delete)

	// Feedback (create is an upsert on participant + talk)
	router.POST("/feedback", feedbackHandler.Create)
	router.GET("/feedback", feedbackHandler.List)
	router.GET("/feedback/:id", feedbackHandler.GetByID)
	router.PUT("/feedback/:id", feedbackHandler.Update)
	router.DELETE("/feedback/:id", feedbackHandler.Delete)

	// Reports
	reportGroup := router.Group("/reports")
	{
		reportGroup.GET("/registrations", reportHandler.Registrations)
		reportGroup.GET("/non-registrants", reportHandler.NonRegistrants)
		reportGroup.GET("/above-average-talks", reportHandler.AboveAverageTalks)
		reportGroup.GET("/organizer-productivity", reportHandler.OrganizerProductivity)
		reportGroup.GET("/payment-stats", reportHandler.PaymentStats)
		reportGroup.GET("/financial-actors", reportHandler.FinancialActors)
		reportGroup.GET("/talks-without-feedback", reportHandler.TalksWithoutFeedback)
		reportGroup.GET("/event-attendance", reportHandler.EventAttendance)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
