package endpoints

import (
	"net/http"
	"strconv"

	"jobboard"
	"jobboard/internal/api/handler/middleware"
	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
	"jobboard/internal/api/repo"
	"jobboard/internal/api/service"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type adminHandler struct {
	userService      *service.UserService
	jobService       *service.JobService
	appService       *service.ApplicationService
	dashboardService *service.DashboardService
	logger           zerolog.Logger
}

func AdminHandler(router *graceful.Graceful, userService *service.UserService, jobService *service.JobService, appService *service.ApplicationService, dashboardService *service.DashboardService, redisClient *redis.Client) {
	h := &adminHandler{
		userService:      userService,
		jobService:       jobService,
		appService:       appService,
		dashboardService: dashboardService,
		logger:           jobboard.Logger,
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jobboard.GetConfig(), redisClient))
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/stats", h.stats)
		admin.GET("/users", h.listUsers)
		admin.GET("/users/:id", h.getUser)
		admin.PUT("/users/:id", h.updateUser)
		admin.DELETE("/users/:id", h.deleteUser)
		admin.GET("/applications", h.listApplications)
		admin.GET("/jobs", h.listJobs)
		admin.DELETE("/jobs/:id", h.deleteJob)
		admin.PUT("/jobs/:id/verify", h.verifyJob)
		admin.PUT("/jobs/:id/feature", h.featureJob)
	}
}

func (slf *adminHandler) stats(c *gin.Context) {
	stats, err := slf.dashboardService.AdminStats()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error building admin stats")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (slf *adminHandler) listUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	users, err := slf.userService.GetAll(c.Query("role"), page, pageSize)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing users")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (slf *adminHandler) getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := slf.userService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (slf *adminHandler) updateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var dto request.AdminUpdateUser
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	user, err := slf.userService.AdminUpdate(id, dto)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (slf *adminHandler) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := slf.userService.Delete(id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (slf *adminHandler) listApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	apps, err := slf.appService.GetAll(page, pageSize)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing applications")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// listJobs pages all postings, drafts and closed included, optionally
// filtered by status.
func (slf *adminHandler) listJobs(c *gin.Context) {
	filter := repo.JobFilter{
		Status: models.JobStatus(c.Query("status")),
		Query:  c.Query("q"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	page, err := slf.jobService.GetAll(filter)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing jobs")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (slf *adminHandler) deleteJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := slf.jobService.AdminDelete(id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (slf *adminHandler) verifyJob(c *gin.Context) {
	slf.setJobFlag(c, slf.jobService.SetVerified)
}

func (slf *adminHandler) featureJob(c *gin.Context) {
	slf.setJobFlag(c, slf.jobService.SetFeatured)
}

func (slf *adminHandler) setJobFlag(c *gin.Context, set func(uint, bool) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var dto struct {
		Value bool `json:"value"`
	}
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	if err := set(id, dto.Value); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job updated"})
}
