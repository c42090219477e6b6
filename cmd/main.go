package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"jobboard"
	"jobboard/internal/api/handler/endpoints"
	"jobboard/internal/api/models"
	"jobboard/internal/api/service"
	"jobboard/internal/events"
	"jobboard/internal/realtime"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
)

func main() {
	jobboard.InitConfig(".env")
	gin.SetMode(gin.ReleaseMode)

	db := jobboard.OpenDatabase()

	if jobboard.GetConfig().Mode == "dev" {
		if err := db.AutoMigrate(
			&models.User{},
			&models.Job{},
			&models.Application{},
		); err != nil {
			jobboard.Logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
		jobboard.Logger.Info().Msg("Database migrated successfully")
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(jobboard.GetConfig().ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	redisClient := jobboard.OpenRedis()
	defer redisClient.Close()

	reportPool := jobboard.OpenReportPool(ctx)
	defer reportPool.Close()

	publisher, err := events.NewPublisher(jobboard.GetConfig().NatsURL, jobboard.Logger)
	if err != nil {
		jobboard.Logger.Fatal().Err(err).Msg("Failed to connect to NATS")
	}
	defer publisher.Close()

	hub := realtime.NewHub()
	go hub.Run()
	if natsURL := jobboard.GetConfig().NatsURL; natsURL != "" {
		bridge, err := realtime.NewNATSBridge(natsURL, hub)
		if err != nil {
			jobboard.Logger.Fatal().Err(err).Msg("Failed to start realtime bridge")
		}
		if err := bridge.Subscribe(); err != nil {
			jobboard.Logger.Fatal().Err(err).Msg("Failed to subscribe realtime bridge")
		}
		defer bridge.Close()
		jobboard.Logger.Info().Msg("Realtime notification bridge started")
	}

	userService := service.NewUserService(db, redisClient)
	jobService := service.NewJobService(db)
	appService := service.NewApplicationService(db, publisher)
	dashboardService := service.NewDashboardService(db, redisClient)
	notificationService := service.NewNotificationService(db)
	reportService := service.NewReportService(db, reportPool)

	endpoints.AuthHandler(router, userService, redisClient)
	endpoints.JobHandler(router, jobService, userService, redisClient)
	endpoints.ApplicationHandler(router, appService, redisClient)
	endpoints.CompanyHandler(router, userService, jobService)
	endpoints.DashboardHandler(router, dashboardService, notificationService, redisClient)
	endpoints.AdminHandler(router, userService, jobService, appService, dashboardService, redisClient)
	endpoints.ReportHandler(router, reportService, redisClient)
	endpoints.WebSocketHandler(router, hub)

	jobboard.Logger.Debug().Msgf("Starting job board API on port %s", jobboard.GetConfig().ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		jobboard.Logger.Fatal().Msg(err.Error())
		panic(err)
	}
}
