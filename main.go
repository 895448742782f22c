// File: dermacare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dermacare/config"
	appcron "dermacare/cron"
	"dermacare/database"
	apptRepo "dermacare/database/repository/appointment"
	doctorRepo "dermacare/database/repository/doctor"
	"dermacare/handlers"
	"dermacare/middleware"
	"dermacare/routes"
	"dermacare/services/scheduling"
	"dermacare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	client, err := database.Connect(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := client.Database(config.AppConfig.DatabaseName)

	utils.InitCache()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctors := doctorRepo.NewMongoDoctorRepo(db)
	ledger := apptRepo.NewMongoAppointmentRepo(db)
	if err := ledger.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// services.
	locker := scheduling.NewRedisSlotLocker(utils.GetLockClient(), logger)
	bookingService := &scheduling.DefaultBookingService{
		Ledger: ledger,
		Locks:  locker,
		Log:    logger,
	}
	slotResolver := &scheduling.DefaultSlotResolver{
		Doctors: doctors,
		Ledger:  ledger,
	}

	// handlers.
	cacheTTL := time.Duration(config.AppConfig.DoctorCacheTTL) * time.Second
	hb := &routes.HandlerBundle{
		Doctor:  handlers.NewDoctorHandler(doctors, slotResolver, utils.GetCacheClient(), cacheTTL, logger),
		Booking: handlers.NewBookingHandler(bookingService, doctors, logger),
		Admin:   handlers.NewAdminHandler(bookingService, doctors, logger),
	}
	routes.RegisterRoutes(router, hb)

	// Daily reminder sweep.
	reminderCron, err := appcron.StartReminderJob(config.AppConfig.ReminderSchedule, ledger, doctors, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start reminder job: %v", err)
	}

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

	reminderCron.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: error disconnecting from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
