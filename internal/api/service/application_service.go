package service

import (
	"errors"
	"time"

	"jobboard"
	"jobboard/internal/api/handler/mapper"
	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
	"jobboard/internal/api/repo"
	"jobboard/internal/events"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationService struct {
	appRepo  *repo.ApplicationRepository
	jobRepo  *repo.JobRepository
	userRepo *repo.UserRepository
	events   *events.Publisher
	logger   zerolog.Logger
}

func NewApplicationService(db *gorm.DB, publisher *events.Publisher) *ApplicationService {
	return &ApplicationService{
		appRepo:  repo.NewApplicationRepository(db),
		jobRepo:  repo.NewJobRepository(db),
		userRepo: repo.NewUserRepository(db),
		events:   publisher,
		logger:   jobboard.Logger,
	}
}

// Apply submits an application for a job. One application per seeker per
// job; closed and draft postings reject new applications.
func (slf *ApplicationService) Apply(jobID, applicantID uint, req request.ApplyDTO, resumePath string) (response.ApplicationView, error) {
	job, err := slf.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ApplicationView{}, NotFound("job %d not found", jobID)
		}
		return response.ApplicationView{}, err
	}
	if !job.IsAccepting() {
		return response.ApplicationView{}, Conflict("this job is no longer accepting applications")
	}

	applicant, err := slf.userRepo.FindByID(applicantID)
	if err != nil {
		return response.ApplicationView{}, err
	}
	if applicant.Role != models.RoleJobSeeker {
		return response.ApplicationView{}, Forbidden("only job seekers can apply")
	}

	if _, err := slf.appRepo.FindByJobAndApplicant(jobID, applicantID); err == nil {
		return response.ApplicationView{}, Conflict("you have already applied for this job")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.ApplicationView{}, err
	}

	resume := resumePath
	if resume == "" {
		resume = applicant.Resume
	}
	if resume == "" {
		resume = models.NoResume
	}

	now := time.Now()
	app := models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		EmployerID:  job.CompanyID,
		CoverLetter: req.CoverLetter,
		Resume:      resume,
		Details:     applicantDetailsFrom(req, applicant),
		Status:      models.StatusPending,
		History: models.StatusHistory{
			{Status: models.StatusPending, Note: "Application submitted", Timestamp: now},
		},
	}
	if err := slf.appRepo.Create(&app); err != nil {
		// The unique index backs up the pre-check under concurrent submits.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.ApplicationView{}, Conflict("you have already applied for this job")
		}
		return response.ApplicationView{}, err
	}
	if err := slf.jobRepo.IncrementApplicationCount(jobID); err != nil {
		slf.logger.Warn().Err(err).Uint("jobId", jobID).Msg("Failed to bump application count")
	}

	slf.events.Publish(events.SubjectApplicationCreated, events.Event{
		ApplicationID: app.ID,
		JobID:         jobID,
		JobTitle:      job.Title,
		ApplicantID:   applicantID,
		EmployerID:    job.CompanyID,
		Timestamp:     now,
	})
	slf.logger.Info().Uint("applicationId", app.ID).Uint("jobId", jobID).Msg("Application submitted")

	app.Job = job
	return mapper.ProjectApplication(app, applicantID, models.RoleJobSeeker), nil
}

// GetByID returns one application projected for the viewer. Only the
// applicant, the owning employer and admins may see it at all.
func (slf *ApplicationService) GetByID(id, viewerID uint, viewerRole models.AppRole) (response.ApplicationView, error) {
	app, err := slf.findVisible(id, viewerID, viewerRole)
	if err != nil {
		return response.ApplicationView{}, err
	}
	return mapper.ProjectApplication(app, viewerID, viewerRole), nil
}

// ListByApplicant returns the seeker's own applications.
func (slf *ApplicationService) ListByApplicant(applicantID uint) ([]response.ApplicationView, error) {
	apps, err := slf.appRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	return mapper.ProjectApplications(apps, applicantID, models.RoleJobSeeker), nil
}

// ListByEmployer returns every application across the employer's postings,
// each one redacted per its access state.
func (slf *ApplicationService) ListByEmployer(employerID uint) ([]response.ApplicationView, error) {
	apps, err := slf.appRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, err
	}
	return mapper.ProjectApplications(apps, employerID, models.RoleEmployer), nil
}

// ListByJob returns a posting's applications for its owning employer.
func (slf *ApplicationService) ListByJob(jobID, employerID uint, viewerRole models.AppRole) ([]response.ApplicationView, error) {
	job, err := slf.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("job %d not found", jobID)
		}
		return nil, err
	}
	if viewerRole != models.RoleAdmin && job.CompanyID != employerID {
		return nil, Forbidden("job %d does not belong to this employer", jobID)
	}
	apps, err := slf.appRepo.FindByJob(jobID)
	if err != nil {
		return nil, err
	}
	return mapper.ProjectApplications(apps, employerID, viewerRole), nil
}

// UpdateStatus moves an application through the pipeline. The owning
// employer and admins may moderate; terminal statuses (hired, rejected,
// withdrawn) cannot be left again.
func (slf *ApplicationService) UpdateStatus(id, viewerID uint, viewerRole models.AppRole, req request.UpdateStatusDTO) (response.ApplicationView, error) {
	app, err := slf.moderatedApplication(id, viewerID, viewerRole)
	if err != nil {
		return response.ApplicationView{}, err
	}
	if app.Status.IsFinal() {
		return response.ApplicationView{}, Conflict("application is already %s", app.Status)
	}
	next := models.ApplicationStatus(req.Status)
	if next == app.Status {
		return response.ApplicationView{}, Conflict("application is already %s", app.Status)
	}

	now := time.Now()
	app.SetStatus(next, req.Note, now)
	if err := slf.appRepo.Update(&app); err != nil {
		return response.ApplicationView{}, err
	}

	slf.publishStatus(app, now)
	return mapper.ProjectApplication(app, viewerID, viewerRole), nil
}

// ScheduleInterview records interview details and moves the application to
// interview_scheduled.
func (slf *ApplicationService) ScheduleInterview(id, viewerID uint, viewerRole models.AppRole, req request.ScheduleInterviewDTO) (response.ApplicationView, error) {
	app, err := slf.moderatedApplication(id, viewerID, viewerRole)
	if err != nil {
		return response.ApplicationView{}, err
	}
	if app.Status.IsFinal() {
		return response.ApplicationView{}, Conflict("application is already %s", app.Status)
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return response.ApplicationView{}, Invalid("date must be RFC 3339, got %q", req.Date)
	}

	now := time.Now()
	app.InterviewDate = &date
	app.InterviewLocation = req.Location
	app.InterviewNotes = req.Notes
	app.SetStatus(models.StatusInterviewScheduled, "Interview scheduled", now)
	if err := slf.appRepo.Update(&app); err != nil {
		return response.ApplicationView{}, err
	}

	slf.publishStatus(app, now)
	return mapper.ProjectApplication(app, viewerID, viewerRole), nil
}

// Withdraw lets the applicant pull their application. Withdrawn is terminal.
func (slf *ApplicationService) Withdraw(id, applicantID uint) (response.ApplicationView, error) {
	app, err := slf.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ApplicationView{}, NotFound("application %d not found", id)
		}
		return response.ApplicationView{}, err
	}
	if app.ApplicantID != applicantID {
		return response.ApplicationView{}, Forbidden("application %d does not belong to this user", id)
	}
	if app.Status.IsFinal() {
		return response.ApplicationView{}, Conflict("application is already %s", app.Status)
	}

	now := time.Now()
	app.SetStatus(models.StatusWithdrawn, "Withdrawn by applicant", now)
	if err := slf.appRepo.Update(&app); err != nil {
		return response.ApplicationView{}, err
	}

	slf.publishStatus(app, now)
	return mapper.ProjectApplication(app, applicantID, models.RoleJobSeeker), nil
}

// Rate stores the employer's private rating and notes on an application.
func (slf *ApplicationService) Rate(id, employerID uint, rating int, notes string) error {
	app, err := slf.ownedApplication(id, employerID)
	if err != nil {
		return err
	}
	if rating < 1 || rating > 5 {
		return Invalid("rating must be between 1 and 5")
	}
	app.Rating = &rating
	if notes != "" {
		app.EmployerNotes = notes
	}
	return slf.appRepo.Update(&app)
}

// RequestAccess asks for the applicant's identity to be revealed to the
// owning employer. Pending and granted requests cannot be repeated.
func (slf *ApplicationService) RequestAccess(id, employerID uint) (response.ApplicationView, error) {
	app, err := slf.ownedApplication(id, employerID)
	if err != nil {
		return response.ApplicationView{}, err
	}

	now := time.Now()
	if err := app.RequestAccess(now); err != nil {
		switch {
		case errors.Is(err, models.ErrAccessAlreadyRequested):
			return response.ApplicationView{}, Conflict("access to these details has already been requested")
		case errors.Is(err, models.ErrAccessAlreadyGranted):
			return response.ApplicationView{}, Conflict("access to these details has already been granted")
		default:
			return response.ApplicationView{}, err
		}
	}
	if err := slf.appRepo.Update(&app); err != nil {
		return response.ApplicationView{}, err
	}

	slf.events.Publish(events.SubjectAccessRequested, events.Event{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		ApplicantID:   app.ApplicantID,
		EmployerID:    app.EmployerID,
		Timestamp:     now,
	})
	slf.logger.Info().Uint("applicationId", app.ID).Uint("employerId", employerID).Msg("Details access requested")
	return mapper.ProjectApplication(app, employerID, models.RoleEmployer), nil
}

// GrantAccess approves a pending reveal request. Only requested
// applications can be granted; granting twice is a conflict.
func (slf *ApplicationService) GrantAccess(id, adminID uint) (response.ApplicationView, error) {
	app, err := slf.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ApplicationView{}, NotFound("application %d not found", id)
		}
		return response.ApplicationView{}, err
	}

	now := time.Now()
	if err := app.GrantAccess(adminID, now); err != nil {
		switch {
		case errors.Is(err, models.ErrAccessNotRequested):
			return response.ApplicationView{}, Conflict("access has not been requested for this application")
		case errors.Is(err, models.ErrAccessAlreadyGranted):
			return response.ApplicationView{}, Conflict("access to these details has already been granted")
		default:
			return response.ApplicationView{}, err
		}
	}
	if err := slf.appRepo.Update(&app); err != nil {
		return response.ApplicationView{}, err
	}

	slf.events.Publish(events.SubjectAccessGranted, events.Event{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		ApplicantID:   app.ApplicantID,
		EmployerID:    app.EmployerID,
		Timestamp:     now,
	})
	slf.logger.Info().Uint("applicationId", app.ID).Uint("adminId", adminID).Msg("Details access granted")
	return mapper.ProjectApplication(app, adminID, models.RoleAdmin), nil
}

// ListAccessRequests returns the admin queue of pending reveal requests,
// newest first.
func (slf *ApplicationService) ListAccessRequests() ([]response.AccessRequestItem, error) {
	apps, err := slf.appRepo.FindPendingAccessRequests()
	if err != nil {
		return nil, err
	}
	out := make([]response.AccessRequestItem, len(apps))
	for i, app := range apps {
		out[i] = mapper.ToAccessRequestItem(app)
	}
	return out, nil
}

// GetAll pages through every application for the admin overview.
func (slf *ApplicationService) GetAll(page, pageSize int) (response.Page[response.ApplicationView], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	apps, total, err := slf.appRepo.GetAll(page, pageSize)
	if err != nil {
		return response.Page[response.ApplicationView]{}, err
	}
	views := mapper.ProjectApplications(apps, 0, models.RoleAdmin)
	return response.NewPage(views, total, page, pageSize), nil
}

func (slf *ApplicationService) findVisible(id, viewerID uint, viewerRole models.AppRole) (models.Application, error) {
	app, err := slf.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Application{}, NotFound("application %d not found", id)
		}
		return models.Application{}, err
	}
	switch {
	case viewerRole == models.RoleAdmin:
	case viewerID == app.ApplicantID:
	case viewerID == app.EmployerID:
	default:
		return models.Application{}, Forbidden("application %d is not visible to this user", id)
	}
	return app, nil
}

// moderatedApplication loads an application for a pipeline change. Admins
// may moderate any application, employers only their own.
func (slf *ApplicationService) moderatedApplication(id, viewerID uint, viewerRole models.AppRole) (models.Application, error) {
	if viewerRole == models.RoleAdmin {
		app, err := slf.appRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Application{}, NotFound("application %d not found", id)
			}
			return models.Application{}, err
		}
		return app, nil
	}
	return slf.ownedApplication(id, viewerID)
}

func (slf *ApplicationService) ownedApplication(id, employerID uint) (models.Application, error) {
	app, err := slf.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Application{}, NotFound("application %d not found", id)
		}
		return models.Application{}, err
	}
	if app.EmployerID != employerID {
		return models.Application{}, Forbidden("application %d does not belong to this employer", id)
	}
	return app, nil
}

func (slf *ApplicationService) publishStatus(app models.Application, now time.Time) {
	slf.events.Publish(events.SubjectApplicationStatus, events.Event{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		JobTitle:      app.Job.Title,
		ApplicantID:   app.ApplicantID,
		EmployerID:    app.EmployerID,
		Status:        string(app.Status),
		Timestamp:     now,
	})
}

func applicantDetailsFrom(req request.ApplyDTO, applicant models.User) models.ApplicantDetails {
	details := models.ApplicantDetails{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Experience:      req.Experience,
		CurrentLocation: req.CurrentLocation,
		CurrentJobTitle: req.CurrentJobTitle,
		Skills:          req.Skills,
		Education:       req.Education,
		NoticePeriod:    req.NoticePeriod,
	}
	if req.ExpectedSalary > 0 {
		details.ExpectedSalary = models.SalaryRange{Min: req.ExpectedSalary, Max: req.ExpectedSalary, Period: "monthly"}
	}

	// Profile values fill any blanks the form left.
	if details.Name == "" {
		details.Name = applicant.Name
	}
	if details.Email == "" {
		details.Email = applicant.Email
	}
	if details.Phone == "" {
		details.Phone = applicant.Phone
	}
	if details.Experience == "" {
		details.Experience = applicant.Experience
	}
	if details.CurrentLocation == "" {
		details.CurrentLocation = applicant.CurrentLocation
	}
	if len(details.Skills) == 0 {
		details.Skills = applicant.Skills
	}
	if details.Education == "" {
		details.Education = applicant.Education
	}
	return details
}
