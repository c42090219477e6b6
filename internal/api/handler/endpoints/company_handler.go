package endpoints

import (
	"net/http"

	"jobboard"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/repo"
	"jobboard/internal/api/service"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type companyHandler struct {
	userService *service.UserService
	jobService  *service.JobService
	logger      zerolog.Logger
}

// CompanyHandler exposes the public employer directory. No auth: these
// pages are part of the job board's public surface.
func CompanyHandler(router *graceful.Graceful, userService *service.UserService, jobService *service.JobService) {
	h := &companyHandler{
		userService: userService,
		jobService:  jobService,
		logger:      jobboard.Logger,
	}

	companies := router.Group("/api/v1/companies")
	{
		companies.GET("", h.list)
		companies.GET("/:id", h.getByID)
		companies.GET("/:id/jobs", h.jobs)
	}
}

func (slf *companyHandler) list(c *gin.Context) {
	companies, err := slf.userService.GetCompanies()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing companies")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve companies"})
		return
	}

	c.JSON(http.StatusOK, companies)
}

func (slf *companyHandler) getByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	company, err := slf.userService.GetCompanyByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (slf *companyHandler) jobs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := slf.userService.GetCompanyByID(id); err != nil {
		writeError(c, err)
		return
	}

	page, err := slf.jobService.Search(repo.JobFilter{CompanyID: id, PageSize: 50})
	if err != nil {
		slf.logger.Error().Err(err).Uint("companyId", id).Msg("Error listing company jobs")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, page)
}
