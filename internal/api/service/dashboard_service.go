package service

import (
	"fmt"
	"time"

	"jobboard"
	"jobboard/internal/api/handler/mapper"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
	"jobboard/internal/api/repo"
	"jobboard/pkg"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const dashboardCacheTTL = 2 * time.Minute

// DashboardService aggregates the per-role dashboard numbers. Results are
// cached in Redis for a short window since every page load hits them.
type DashboardService struct {
	appRepo  *repo.ApplicationRepository
	jobRepo  *repo.JobRepository
	userRepo *repo.UserRepository
	redis    *redis.Client
	logger   zerolog.Logger
}

func NewDashboardService(db *gorm.DB, redisClient *redis.Client) *DashboardService {
	return &DashboardService{
		appRepo:  repo.NewApplicationRepository(db),
		jobRepo:  repo.NewJobRepository(db),
		userRepo: repo.NewUserRepository(db),
		redis:    redisClient,
		logger:   jobboard.Logger,
	}
}

func (slf *DashboardService) Employer(employerID uint) (response.EmployerDashboard, error) {
	var cached response.EmployerDashboard
	key := fmt.Sprintf("dashboard:employer:%d", employerID)
	if slf.cacheGet(key, &cached) {
		return cached, nil
	}

	var dash response.EmployerDashboard
	var err error
	if dash.TotalJobs, err = slf.jobRepo.CountByCompany(employerID); err != nil {
		return dash, err
	}
	if dash.ActiveJobs, err = slf.jobRepo.CountActiveByCompany(employerID); err != nil {
		return dash, err
	}
	if dash.TotalApplications, err = slf.appRepo.CountByEmployerAndStatus(employerID, ""); err != nil {
		return dash, err
	}
	if dash.PendingReview, err = slf.appRepo.CountByEmployerAndStatus(employerID, models.StatusPending); err != nil {
		return dash, err
	}
	if dash.Shortlisted, err = slf.appRepo.CountByEmployerAndStatus(employerID, models.StatusShortlisted); err != nil {
		return dash, err
	}
	if dash.InterviewsScheduled, err = slf.appRepo.CountByEmployerAndStatus(employerID, models.StatusInterviewScheduled); err != nil {
		return dash, err
	}
	if dash.Hired, err = slf.appRepo.CountByEmployerAndStatus(employerID, models.StatusHired); err != nil {
		return dash, err
	}

	recent, err := slf.appRepo.FindRecentByEmployer(employerID, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return dash, err
	}
	dash.RecentApplications = mapper.ProjectApplications(recent, employerID, models.RoleEmployer)

	slf.cacheSet(key, dash)
	return dash, nil
}

func (slf *DashboardService) JobSeeker(applicantID uint) (response.JobSeekerDashboard, error) {
	var cached response.JobSeekerDashboard
	key := fmt.Sprintf("dashboard:seeker:%d", applicantID)
	if slf.cacheGet(key, &cached) {
		return cached, nil
	}

	var dash response.JobSeekerDashboard
	var err error
	if dash.TotalApplications, err = slf.appRepo.CountByApplicantAndStatus(applicantID, ""); err != nil {
		return dash, err
	}
	if dash.Pending, err = slf.appRepo.CountByApplicantAndStatus(applicantID, models.StatusPending); err != nil {
		return dash, err
	}
	if dash.Shortlisted, err = slf.appRepo.CountByApplicantAndStatus(applicantID, models.StatusShortlisted); err != nil {
		return dash, err
	}
	if dash.Interviews, err = slf.appRepo.CountByApplicantAndStatus(applicantID, models.StatusInterviewScheduled); err != nil {
		return dash, err
	}
	if dash.Rejected, err = slf.appRepo.CountByApplicantAndStatus(applicantID, models.StatusRejected); err != nil {
		return dash, err
	}

	user, err := slf.userRepo.FindByID(applicantID)
	if err != nil {
		return dash, err
	}
	saved, err := slf.jobRepo.FindByIDs(user.SavedJobs)
	if err != nil {
		return dash, err
	}
	dash.SavedJobs = mapper.ToJobResponses(saved)

	updates, err := slf.appRepo.FindRecentStatusChangesByApplicant(applicantID, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return dash, err
	}
	dash.RecentUpdates = mapper.ProjectApplications(updates, applicantID, models.RoleJobSeeker)

	slf.cacheSet(key, dash)
	return dash, nil
}

func (slf *DashboardService) AdminStats() (response.AdminStats, error) {
	var cached response.AdminStats
	const key = "dashboard:admin"
	if slf.cacheGet(key, &cached) {
		return cached, nil
	}

	var stats response.AdminStats
	var err error
	if stats.JobSeekers, err = slf.userRepo.CountByRole(models.RoleJobSeeker); err != nil {
		return stats, err
	}
	if stats.Employers, err = slf.userRepo.CountByRole(models.RoleEmployer); err != nil {
		return stats, err
	}
	stats.TotalUsers = stats.JobSeekers + stats.Employers
	if stats.TotalJobs, err = slf.jobRepo.CountByStatus(""); err != nil {
		return stats, err
	}
	if stats.ActiveJobs, err = slf.jobRepo.CountByStatus(models.JobActive); err != nil {
		return stats, err
	}
	if stats.TotalApplications, err = slf.appRepo.Count(); err != nil {
		return stats, err
	}
	pending, err := slf.appRepo.FindPendingAccessRequests()
	if err != nil {
		return stats, err
	}
	stats.PendingAccessRequests = int64(len(pending))

	slf.cacheSet(key, stats)
	return stats, nil
}

func (slf *DashboardService) cacheGet(key string, dest any) bool {
	if slf.redis == nil {
		return false
	}
	err := pkg.RedisGet(slf.redis, key, dest)
	if err != nil {
		if !pkg.IsRedisNil(err) {
			slf.logger.Warn().Err(err).Str("key", key).Msg("Dashboard cache read failed")
		}
		return false
	}
	return true
}

func (slf *DashboardService) cacheSet(key string, value any) {
	if slf.redis == nil {
		return
	}
	if err := pkg.RedisSet(slf.redis, key, value, dashboardCacheTTL); err != nil {
		slf.logger.Warn().Err(err).Str("key", key).Msg("Dashboard cache write failed")
	}
}
