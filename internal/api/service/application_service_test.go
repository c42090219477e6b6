package service

import (
	"fmt"
	"testing"
	"time"

	"jobboard"
	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	jobboard.InitConfig("../../../.env.test")

	db := jobboard.OpenDatabase()
	err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{})
	require.NoError(t, err, "Failed to migrate tables")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, role models.AppRole) models.User {
	user := models.User{
		Name:     "Test " + string(role),
		Email:    fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()),
		Phone:    fmt.Sprintf("9%09d", time.Now().UnixNano()%1e9),
		Password: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B1W8W7o0eVFDBPZ3Zop6pGyHxLfa",
		Role:     role,
		IsActive: true,
	}
	if role == models.RoleEmployer {
		user.CompanyName = "Test Traders"
	}
	require.NoError(t, db.Create(&user).Error)
	t.Cleanup(func() { db.Unscoped().Delete(&models.User{}, user.ID) })
	return user
}

func createTestJob(t *testing.T, db *gorm.DB, employer models.User, status models.JobStatus) models.Job {
	job := models.Job{
		Title:         "Sales Executive",
		Description:   "Field sales role",
		CompanyID:     employer.ID,
		CompanyName:   employer.CompanyName,
		Location:      models.JobLocation{City: "Amritsar"},
		JobType:       "fulltime",
		WorkMode:      "office",
		Category:      "sales",
		ExperienceReq: "1-3",
		EducationReq:  "graduate",
		Salary:        models.SalaryRange{Min: 15000, Max: 25000, Period: "monthly"},
		Vacancies:     2,
		Status:        status,
	}
	require.NoError(t, db.Create(&job).Error)
	t.Cleanup(func() { db.Unscoped().Delete(&models.Job{}, job.ID) })
	return job
}

func cleanupApplication(db *gorm.DB, id uint) {
	if id > 0 {
		db.Unscoped().Delete(&models.Application{}, id)
	}
}

func TestApply(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	view, err := svc.Apply(job.ID, seeker.ID, request.ApplyDTO{
		CoverLetter: "Interested in this role",
		Experience:  "1-3",
	}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, view.ID)

	assert.Equal(t, string(models.StatusPending), view.Status)
	assert.Equal(t, job.ID, view.JobID)
	// The applicant sees their own identity.
	assert.False(t, view.Applicant.Anonymous)
	assert.Equal(t, seeker.Name, view.Applicant.Name)

	stored, err := svc.appRepo.FindByID(view.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NoResume, stored.Resume)
	assert.Equal(t, seeker.Email, stored.Details.Email)
	require.Len(t, stored.History, 1)
}

func TestApply_DuplicateIsConflict(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	view, err := svc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, view.ID)

	_, err = svc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestApply_ClosedJobIsConflict(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobClosed)

	_, err := svc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestApply_MissingJobIsNotFound(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	seeker := createTestUser(t, db, models.RoleJobSeeker)

	_, err := svc.Apply(99999999, seeker.ID, request.ApplyDTO{}, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessWorkflow(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	admin := createTestUser(t, db, models.RoleAdmin)
	job := createTestJob(t, db, employer, models.JobActive)

	created, err := svc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, created.ID)

	// Hidden: the employer sees only the pseudonym.
	view, err := svc.GetByID(created.ID, employer.ID, models.RoleEmployer)
	require.NoError(t, err)
	assert.True(t, view.Applicant.Anonymous)
	assert.Equal(t, fmt.Sprintf("Applicant %d", seeker.ID), view.Applicant.Name)

	// Granting before any request is a conflict.
	_, err = svc.GrantAccess(created.ID, admin.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// Request: still anonymous.
	view, err = svc.RequestAccess(created.ID, employer.ID)
	require.NoError(t, err)
	assert.True(t, view.AccessRequested)
	assert.True(t, view.Applicant.Anonymous)

	// A second request is a conflict.
	_, err = svc.RequestAccess(created.ID, employer.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// The pending request shows up in the admin queue.
	queue, err := svc.ListAccessRequests()
	require.NoError(t, err)
	found := false
	for _, item := range queue {
		if item.ApplicationID == created.ID {
			found = true
			assert.Equal(t, seeker.Name, item.ApplicantName)
		}
	}
	assert.True(t, found, "expected application in the access-request queue")

	// Grant: the employer now sees the identity.
	_, err = svc.GrantAccess(created.ID, admin.ID)
	require.NoError(t, err)

	view, err = svc.GetByID(created.ID, employer.ID, models.RoleEmployer)
	require.NoError(t, err)
	assert.False(t, view.Applicant.Anonymous)
	assert.Equal(t, seeker.Name, view.Applicant.Name)
	assert.Equal(t, seeker.Email, view.Applicant.Email)

	// Granting twice is a conflict.
	_, err = svc.GrantAccess(created.ID, admin.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAccessRequest_OnlyOwningEmployer(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	other := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	created, err := svc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, created.ID)

	_, err = svc.RequestAccess(created.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatus(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	created, err := svc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, created.ID)

	view, err := svc.UpdateStatus(created.ID, employer.ID, models.RoleEmployer, request.UpdateStatusDTO{
		Status: string(models.StatusShortlisted),
		Note:   "Strong profile",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusShortlisted), view.Status)

	// Terminal status locks the pipeline.
	_, err = svc.UpdateStatus(created.ID, employer.ID, models.RoleEmployer, request.UpdateStatusDTO{
		Status: string(models.StatusHired),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(created.ID, employer.ID, models.RoleEmployer, request.UpdateStatusDTO{
		Status: string(models.StatusRejected),
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateStatus_AdminModeration(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	other := createTestUser(t, db, models.RoleEmployer)
	admin := createTestUser(t, db, models.RoleAdmin)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	created, err := svc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, created.ID)

	// A foreign employer still cannot touch the pipeline.
	_, err = svc.UpdateStatus(created.ID, other.ID, models.RoleEmployer, request.UpdateStatusDTO{
		Status: string(models.StatusReviewing),
	})
	assert.ErrorIs(t, err, ErrForbidden)

	// Admins moderate any application, ownership aside.
	view, err := svc.UpdateStatus(created.ID, admin.ID, models.RoleAdmin, request.UpdateStatusDTO{
		Status: string(models.StatusShortlisted),
		Note:   "Moderated",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusShortlisted), view.Status)

	view, err = svc.ScheduleInterview(created.ID, admin.ID, models.RoleAdmin, request.ScheduleInterviewDTO{
		Date:     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Location: "Office",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusInterviewScheduled), view.Status)
}

func TestWithdraw(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	created, err := svc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, created.ID)

	// Only the applicant can withdraw.
	_, err = svc.Withdraw(created.ID, employer.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	view, err := svc.Withdraw(created.ID, seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusWithdrawn), view.Status)

	// Withdrawn is terminal for the employer too.
	_, err = svc.UpdateStatus(created.ID, employer.ID, models.RoleEmployer, request.UpdateStatusDTO{
		Status: string(models.StatusReviewing),
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetByID_Visibility(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewApplicationService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	stranger := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	created, err := svc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, created.ID)

	_, err = svc.GetByID(created.ID, stranger.ID, models.RoleJobSeeker)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetByID(99999999, seeker.ID, models.RoleJobSeeker)
	assert.ErrorIs(t, err, ErrNotFound)
}
