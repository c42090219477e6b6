package endpoints

import (
	"net/http"

	"jobboard"
	"jobboard/internal/api/handler/middleware"
	"jobboard/internal/api/models"
	"jobboard/internal/api/service"
	"jobboard/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type dashboardHandler struct {
	dashboardService    *service.DashboardService
	notificationService *service.NotificationService
	logger              zerolog.Logger
}

func DashboardHandler(router *graceful.Graceful, dashboardService *service.DashboardService, notificationService *service.NotificationService, redisClient *redis.Client) {
	h := &dashboardHandler{
		dashboardService:    dashboardService,
		notificationService: notificationService,
		logger:              jobboard.Logger,
	}

	routes := router.Group("/api/v1")
	routes.Use(middleware.AuthMiddleware(jobboard.GetConfig(), redisClient))
	{
		routes.GET("/dashboard/employer", middleware.RequireRole(models.RoleEmployer), h.employer)
		routes.GET("/dashboard/jobseeker", middleware.RequireRole(models.RoleJobSeeker), h.jobSeeker)
		routes.GET("/notifications", h.notifications)
	}
}

func (slf *dashboardHandler) employer(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	dash, err := slf.dashboardService.Employer(userID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("employerId", userID).Msg("Error building employer dashboard")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash)
}

func (slf *dashboardHandler) jobSeeker(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	dash, err := slf.dashboardService.JobSeeker(userID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error building job seeker dashboard")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash)
}

func (slf *dashboardHandler) notifications(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	role := models.AppRole(pkg.GetUserRole(c))
	feed, err := slf.notificationService.ForUser(userID, role)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error building notification feed")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}
