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
	"jobboard/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type jobHandler struct {
	jobService  *service.JobService
	userService *service.UserService
	config      jobboard.AppConfig
	logger      zerolog.Logger
	redis       *redis.Client
}

func JobHandler(router *graceful.Graceful, jobService *service.JobService, userService *service.UserService, redisClient *redis.Client) {
	h := &jobHandler{
		jobService:  jobService,
		userService: userService,
		config:      jobboard.GetConfig(),
		logger:      jobboard.Logger,
		redis:       redisClient,
	}

	public := router.Group("/api/v1/jobs")
	{
		public.GET("", h.search)
		public.GET("/local", h.localJobs)
		public.GET("/search/advanced", h.advancedSearch)
		public.GET("/:id", h.getByID)
	}

	auth := middleware.AuthMiddleware(h.config, h.redis)
	employer := middleware.RequireRole(models.RoleEmployer)
	seeker := middleware.RequireRole(models.RoleJobSeeker)

	routes := router.Group("/api/v1/jobs")
	routes.Use(auth)
	{
		routes.GET("/mine", employer, h.getMine)
		routes.GET("/saved", seeker, h.savedJobs)
		routes.POST("", employer, h.create)
		routes.PUT("/:id", employer, h.update)
		routes.DELETE("/:id", employer, h.delete)
		routes.POST("/:id/close", employer, h.close)

		routes.POST("/:id/save", seeker, h.saveJob)
		routes.DELETE("/:id/save", seeker, h.unsaveJob)
	}
}

func (slf *jobHandler) search(c *gin.Context) {
	filter := repo.JobFilter{
		Category: c.Query("category"),
		JobType:  c.Query("jobType"),
		WorkMode: c.Query("workMode"),
		City:     c.Query("city"),
		Query:    c.Query("q"),
	}
	filter.SalaryMin, _ = strconv.Atoi(c.Query("salaryMin"))
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	page, err := slf.jobService.Search(filter)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error searching jobs")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// localJobs is the regional shortcut: active postings in the configured
// home city, newest first.
func (slf *jobHandler) localJobs(c *gin.Context) {
	filter := repo.JobFilter{
		City:     slf.config.RegionName,
		PageSize: 50,
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))

	page, err := slf.jobService.Search(filter)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error fetching local jobs")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (slf *jobHandler) advancedSearch(c *gin.Context) {
	filter := repo.JobFilter{
		Query:     c.Query("keywords"),
		Skills:    splitCSV(c.Query("skills")),
		Languages: splitCSV(c.Query("languages")),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	page, err := slf.jobService.Search(filter)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error in advanced search")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (slf *jobHandler) savedJobs(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	jobs, err := slf.userService.GetSavedJobs(userID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error fetching saved jobs")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (slf *jobHandler) getByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := slf.jobService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (slf *jobHandler) getMine(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	jobs, err := slf.jobService.GetByCompany(userID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("companyId", userID).Msg("Error getting employer jobs")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (slf *jobHandler) create(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var dto request.CreateJob
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating job DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	job, err := slf.jobService.Create(userID, dto)
	if err != nil {
		slf.logger.Error().Err(err).Uint("companyId", userID).Msg("Error creating job")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (slf *jobHandler) update(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var dto request.UpdateJob
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	job, err := slf.jobService.Update(id, userID, dto)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (slf *jobHandler) delete(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := slf.jobService.Delete(id, userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (slf *jobHandler) close(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := slf.jobService.Close(id, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (slf *jobHandler) saveJob(c *gin.Context) {
	slf.toggleSavedJob(c, true)
}

func (slf *jobHandler) unsaveJob(c *gin.Context) {
	slf.toggleSavedJob(c, false)
}

func (slf *jobHandler) toggleSavedJob(c *gin.Context, save bool) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := slf.userService.SaveJob(userID, id, save); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Saved jobs updated"})
}
