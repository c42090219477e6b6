package service

import (
	"errors"

	"jobboard"
	"jobboard/internal/api/handler/mapper"
	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
	"jobboard/internal/api/repo"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type JobService struct {
	jobRepo  *repo.JobRepository
	userRepo *repo.UserRepository
	logger   zerolog.Logger
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		jobRepo:  repo.NewJobRepository(db),
		userRepo: repo.NewUserRepository(db),
		logger:   jobboard.Logger,
	}
}

// Search lists jobs for the public board. Unless the filter pins a status,
// only active postings are returned.
func (slf *JobService) Search(f repo.JobFilter) (response.Page[response.Job], error) {
	if f.Status == "" {
		f.Status = models.JobActive
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	jobs, total, err := slf.jobRepo.Search(f)
	if err != nil {
		return response.Page[response.Job]{}, err
	}
	return response.NewPage(mapper.ToJobResponses(jobs), total, f.Page, f.PageSize), nil
}

// GetByID returns one job and counts the view.
func (slf *JobService) GetByID(id uint) (response.Job, error) {
	job, err := slf.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Job{}, NotFound("job %d not found", id)
		}
		return response.Job{}, err
	}
	if err := slf.jobRepo.IncrementViews(id); err != nil {
		slf.logger.Warn().Err(err).Uint("jobId", id).Msg("Failed to count job view")
	}
	return mapper.ToJobResponse(job), nil
}

func (slf *JobService) Create(employerID uint, req request.CreateJob) (response.Job, error) {
	employer, err := slf.userRepo.FindByID(employerID)
	if err != nil {
		return response.Job{}, err
	}
	if employer.Role != models.RoleEmployer {
		return response.Job{}, Forbidden("only employers can post jobs")
	}

	job := mapper.CreateJobToEntity(req, employer)
	if err := slf.jobRepo.Create(&job); err != nil {
		return response.Job{}, err
	}
	slf.logger.Info().Uint("jobId", job.ID).Uint("companyId", employerID).Msg("Job posted")
	return mapper.ToJobResponse(job), nil
}

func (slf *JobService) Update(jobID, employerID uint, req request.UpdateJob) (response.Job, error) {
	job, err := slf.ownedJob(jobID, employerID)
	if err != nil {
		return response.Job{}, err
	}

	patch := mapper.PatchJob(req)
	if len(patch) == 0 {
		return mapper.ToJobResponse(job), nil
	}
	if err := slf.jobRepo.Patch(jobID, patch); err != nil {
		return response.Job{}, err
	}

	job, err = slf.jobRepo.FindByID(jobID)
	if err != nil {
		return response.Job{}, err
	}
	return mapper.ToJobResponse(job), nil
}

// GetAll pages every posting regardless of status for the admin board.
func (slf *JobService) GetAll(f repo.JobFilter) (response.Page[response.Job], error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	jobs, total, err := slf.jobRepo.Search(f)
	if err != nil {
		return response.Page[response.Job]{}, err
	}
	return response.NewPage(mapper.ToJobResponses(jobs), total, f.Page, f.PageSize), nil
}

func (slf *JobService) Delete(jobID, employerID uint) error {
	if _, err := slf.ownedJob(jobID, employerID); err != nil {
		return err
	}
	return slf.jobRepo.Delete(jobID)
}

// AdminDelete removes a posting without the ownership check.
func (slf *JobService) AdminDelete(jobID uint) error {
	if _, err := slf.jobRepo.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("job %d not found", jobID)
		}
		return err
	}
	return slf.jobRepo.Delete(jobID)
}

// Close stops a posting from accepting further applications.
func (slf *JobService) Close(jobID, employerID uint) (response.Job, error) {
	job, err := slf.ownedJob(jobID, employerID)
	if err != nil {
		return response.Job{}, err
	}
	if job.Status == models.JobClosed {
		return response.Job{}, Conflict("job %d is already closed", jobID)
	}
	job.Status = models.JobClosed
	if err := slf.jobRepo.Update(&job); err != nil {
		return response.Job{}, err
	}
	return mapper.ToJobResponse(job), nil
}

// GetByCompany lists an employer's own postings, drafts included.
func (slf *JobService) GetByCompany(employerID uint) ([]response.Job, error) {
	jobs, err := slf.jobRepo.FindByCompany(employerID)
	if err != nil {
		return nil, err
	}
	return mapper.ToJobResponses(jobs), nil
}

// SetVerified flips the admin verification flag on a posting.
func (slf *JobService) SetVerified(jobID uint, verified bool) error {
	if _, err := slf.jobRepo.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("job %d not found", jobID)
		}
		return err
	}
	return slf.jobRepo.Patch(jobID, map[string]any{"is_verified": verified})
}

// SetFeatured flips the featured flag used by the board ordering.
func (slf *JobService) SetFeatured(jobID uint, featured bool) error {
	if _, err := slf.jobRepo.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("job %d not found", jobID)
		}
		return err
	}
	return slf.jobRepo.Patch(jobID, map[string]any{"is_featured": featured})
}

func (slf *JobService) ownedJob(jobID, employerID uint) (models.Job, error) {
	job, err := slf.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Job{}, NotFound("job %d not found", jobID)
		}
		return models.Job{}, err
	}
	if job.CompanyID != employerID {
		return models.Job{}, Forbidden("job %d does not belong to this employer", jobID)
	}
	return job, nil
}
