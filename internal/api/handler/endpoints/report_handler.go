package endpoints

import (
	"net/http"
	"strconv"

	"jobboard"
	"jobboard/internal/api/handler/middleware"
	"jobboard/internal/api/models"
	"jobboard/internal/api/service"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type reportHandler struct {
	reportService *service.ReportService
	logger        zerolog.Logger
}

func ReportHandler(router *graceful.Graceful, reportService *service.ReportService, redisClient *redis.Client) {
	h := &reportHandler{
		reportService: reportService,
		logger:        jobboard.Logger,
	}

	reports := router.Group("/api/v1/reports")
	reports.Use(middleware.AuthMiddleware(jobboard.GetConfig(), redisClient))
	reports.Use(middleware.RequireRole(models.RoleAdmin))
	{
		reports.GET("/user-growth", h.userGrowth)
		reports.GET("/jobs", h.jobs)
		reports.GET("/applications", h.applications)
		reports.GET("/overview", h.overview)
	}
}

func (slf *reportHandler) userGrowth(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	report, err := slf.reportService.UserGrowth(c.Request.Context(), days)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error building user growth report")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (slf *reportHandler) jobs(c *gin.Context) {
	report, err := slf.reportService.Jobs(c.Request.Context())
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error building jobs report")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (slf *reportHandler) applications(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	report, err := slf.reportService.Applications(c.Request.Context(), days)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error building applications report")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (slf *reportHandler) overview(c *gin.Context) {
	report, err := slf.reportService.PlatformOverview(c.Request.Context())
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error building platform overview")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
