package service

import (
	"testing"

	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/models"
	"jobboard/internal/api/repo"
	"jobboard/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewJobService(db)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)

	dto := request.CreateJob{
		Title:         "Delivery Executive",
		Description:   "Local deliveries on two-wheeler",
		Location:      models.JobLocation{City: "Amritsar"},
		JobType:       "fulltime",
		WorkMode:      "office",
		Category:      "logistics",
		ExperienceReq: "0-1",
		EducationReq:  "12th",
		Salary:        models.SalaryRange{Min: 12000, Max: 18000, Period: "monthly"},
	}

	job, err := svc.Create(employer.ID, dto)
	require.NoError(t, err)
	defer db.Unscoped().Delete(&models.Job{}, job.ID)

	assert.Equal(t, "Delivery Executive", job.Title)
	assert.Equal(t, employer.CompanyName, job.CompanyName)
	assert.Equal(t, string(models.JobActive), job.Status)
	assert.Equal(t, 1, job.Vacancies)

	// Seekers cannot post jobs.
	_, err = svc.Create(seeker.ID, dto)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateJob_OwnershipEnforced(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewJobService(db)

	employer := createTestUser(t, db, models.RoleEmployer)
	other := createTestUser(t, db, models.RoleEmployer)
	job := createTestJob(t, db, employer, models.JobActive)

	title := pkg.ToPtr("Senior Sales Executive")
	_, err := svc.Update(job.ID, other.ID, request.UpdateJob{Title: title})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(job.ID, employer.ID, request.UpdateJob{Title: title})
	require.NoError(t, err)
	assert.Equal(t, *title, updated.Title)
}

func TestCloseJob(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewJobService(db)

	employer := createTestUser(t, db, models.RoleEmployer)
	job := createTestJob(t, db, employer, models.JobActive)

	closed, err := svc.Close(job.ID, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.JobClosed), closed.Status)

	_, err = svc.Close(job.ID, employer.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSearchJobs_DefaultsToActive(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewJobService(db)

	employer := createTestUser(t, db, models.RoleEmployer)
	active := createTestJob(t, db, employer, models.JobActive)
	closed := createTestJob(t, db, employer, models.JobClosed)

	page, err := svc.Search(repo.JobFilter{CompanyID: employer.ID})
	require.NoError(t, err)

	ids := make(map[uint]bool)
	for _, j := range page.Data {
		ids[j.ID] = true
	}
	assert.True(t, ids[active.ID])
	assert.False(t, ids[closed.ID])
}

func TestGetJob_NotFound(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewJobService(db)

	_, err := svc.GetByID(99999999)
	assert.ErrorIs(t, err, ErrNotFound)
}
