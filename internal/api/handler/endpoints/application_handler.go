package endpoints

import (
	"net/http"

	"jobboard"
	"jobboard/internal/api/handler/middleware"
	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
	"jobboard/internal/api/service"
	"jobboard/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type applicationHandler struct {
	appService *service.ApplicationService
	config     jobboard.AppConfig
	logger     zerolog.Logger
	redis      *redis.Client
}

func ApplicationHandler(router *graceful.Graceful, appService *service.ApplicationService, redisClient *redis.Client) {
	h := &applicationHandler{
		appService: appService,
		config:     jobboard.GetConfig(),
		logger:     jobboard.Logger,
		redis:      redisClient,
	}

	auth := middleware.AuthMiddleware(h.config, h.redis)
	seeker := middleware.RequireRole(models.RoleJobSeeker)
	employer := middleware.RequireRole(models.RoleEmployer)
	admin := middleware.RequireRole(models.RoleAdmin)
	staff := middleware.RequireRole(models.RoleEmployer, models.RoleAdmin)

	jobs := router.Group("/api/v1/jobs")
	jobs.Use(auth)
	{
		jobs.POST("/:id/apply", seeker, h.apply)
		jobs.GET("/:id/applications", h.listByJob)
	}

	apps := router.Group("/api/v1/applications")
	apps.Use(auth)
	{
		apps.GET("/mine", seeker, h.listMine)
		apps.GET("/received", staff, h.listReceived)
		apps.GET("/access-requests", admin, h.listAccessRequests)
		apps.GET("/:id", h.getByID)
		apps.PUT("/:id/status", staff, h.updateStatus)
		apps.POST("/:id/interview", staff, h.scheduleInterview)
		apps.POST("/:id/rate", employer, h.rate)
		apps.POST("/:id/withdraw", seeker, h.withdraw)
		apps.POST("/:id/request-details", employer, h.requestDetails)
		apps.POST("/:id/grant-details", admin, h.grantDetails)
	}
}

// apply handles the multipart submit: form fields plus an optional resume
// file under the "resume" key.
func (slf *applicationHandler) apply(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var dto request.ApplyDTO
	if err := pkg.ParseFormAndValidate(c, &dto); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing application form")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	resumePath := ""
	if file, err := c.FormFile("resume"); err == nil {
		path, err := pkg.SaveResume(c, file, slf.config.UploadDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
			return
		}
		resumePath = path
	}

	app, err := slf.appService.Apply(jobID, userID, dto, resumePath)
	if err != nil {
		slf.logger.Error().Err(err).Uint("jobId", jobID).Uint("userId", userID).Msg("Error submitting application")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (slf *applicationHandler) listByJob(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	role := models.AppRole(pkg.GetUserRole(c))
	apps, err := slf.appService.ListByJob(jobID, userID, role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (slf *applicationHandler) listMine(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	apps, err := slf.appService.ListByApplicant(userID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error listing applications")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (slf *applicationHandler) listReceived(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	apps, err := slf.appService.ListByEmployer(userID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("employerId", userID).Msg("Error listing received applications")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (slf *applicationHandler) getByID(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	role := models.AppRole(pkg.GetUserRole(c))
	app, err := slf.appService.GetByID(id, userID, role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (slf *applicationHandler) updateStatus(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var dto request.UpdateStatusDTO
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	role := models.AppRole(pkg.GetUserRole(c))
	app, err := slf.appService.UpdateStatus(id, userID, role, dto)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (slf *applicationHandler) scheduleInterview(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var dto request.ScheduleInterviewDTO
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	role := models.AppRole(pkg.GetUserRole(c))
	app, err := slf.appService.ScheduleInterview(id, userID, role, dto)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (slf *applicationHandler) rate(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var dto request.RateApplicationDTO
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	if err := slf.appService.Rate(id, userID, dto.Rating, dto.Notes); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application rated"})
}

func (slf *applicationHandler) withdraw(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := slf.appService.Withdraw(id, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (slf *applicationHandler) requestDetails(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := slf.appService.RequestAccess(id, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (slf *applicationHandler) grantDetails(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := slf.appService.GrantAccess(id, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (slf *applicationHandler) listAccessRequests(c *gin.Context) {
	items, err := slf.appService.ListAccessRequests()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing access requests")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
