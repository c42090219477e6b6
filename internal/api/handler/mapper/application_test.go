package mapper

import (
	"testing"
	"time"

	"jobboard/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleApplication() models.Application {
	return models.Application{
		ID:          7,
		JobID:       3,
		ApplicantID: 11,
		EmployerID:  22,
		CoverLetter: "I would be a great fit.",
		Resume:      "uploads/resumes/resume-abc.pdf",
		Status:      models.StatusPending,
		Details: models.ApplicantDetails{
			Name:            "Priya Sharma",
			Email:           "priya@example.com",
			Phone:           "9876543210",
			Experience:      "3-5",
			CurrentLocation: "Amritsar",
			CurrentJobTitle: "Sales Executive",
			Skills:          []string{"sales", "crm"},
			Education:       "graduate",
			NoticePeriod:    "30 days",
		},
		Applicant: models.User{
			ID:    11,
			Name:  "Priya Sharma",
			Email: "priya@example.com",
			Phone: "9876543210",
		},
	}
}

func TestProjectApplication_EmployerWithoutAccess(t *testing.T) {
	app := sampleApplication()

	view := ProjectApplication(app, app.EmployerID, models.RoleEmployer)

	assert.True(t, view.Applicant.Anonymous)
	assert.Equal(t, "Applicant 11", view.Applicant.Name)
	assert.Empty(t, view.Applicant.Email)
	assert.Empty(t, view.Applicant.Phone)
	assert.Empty(t, view.Resume)

	// The supplementary block stays visible in every state.
	assert.Equal(t, "3-5", view.Applicant.Experience)
	assert.Equal(t, "Amritsar", view.Applicant.CurrentLocation)
	assert.Equal(t, []string{"sales", "crm"}, view.Applicant.Skills)
	assert.Equal(t, "30 days", view.Applicant.NoticePeriod)
}

func TestProjectApplication_RequestedStaysHidden(t *testing.T) {
	app := sampleApplication()
	require.NoError(t, app.RequestAccess(time.Now()))

	view := ProjectApplication(app, app.EmployerID, models.RoleEmployer)

	assert.True(t, view.Applicant.Anonymous)
	assert.Equal(t, "Applicant 11", view.Applicant.Name)
	assert.True(t, view.AccessRequested)
	assert.False(t, view.AccessGranted)
}

func TestProjectApplication_EmployerWithAccess(t *testing.T) {
	app := sampleApplication()
	require.NoError(t, app.RequestAccess(time.Now()))
	require.NoError(t, app.GrantAccess(1, time.Now()))

	view := ProjectApplication(app, app.EmployerID, models.RoleEmployer)

	assert.False(t, view.Applicant.Anonymous)
	assert.Equal(t, "Priya Sharma", view.Applicant.Name)
	assert.Equal(t, "priya@example.com", view.Applicant.Email)
	assert.Equal(t, "9876543210", view.Applicant.Phone)
	assert.Equal(t, "uploads/resumes/resume-abc.pdf", view.Resume)
}

func TestProjectApplication_ApplicantSeesOwnIdentity(t *testing.T) {
	app := sampleApplication()

	view := ProjectApplication(app, app.ApplicantID, models.RoleJobSeeker)

	assert.False(t, view.Applicant.Anonymous)
	assert.Equal(t, "Priya Sharma", view.Applicant.Name)
	assert.Equal(t, "priya@example.com", view.Applicant.Email)
}

func TestProjectApplication_AdminAlwaysSeesIdentity(t *testing.T) {
	app := sampleApplication()

	view := ProjectApplication(app, 999, models.RoleAdmin)

	assert.False(t, view.Applicant.Anonymous)
	assert.Equal(t, "Priya Sharma", view.Applicant.Name)
}

func TestProjectApplication_AccountOverridesBlobIdentity(t *testing.T) {
	app := sampleApplication()
	app.Details.Name = "Old Name"
	app.Details.Email = "old@example.com"
	require.NoError(t, app.RequestAccess(time.Now()))
	require.NoError(t, app.GrantAccess(1, time.Now()))

	view := ProjectApplication(app, app.EmployerID, models.RoleEmployer)

	assert.Equal(t, "Priya Sharma", view.Applicant.Name)
	assert.Equal(t, "priya@example.com", view.Applicant.Email)
}

func TestAnonymousLabel(t *testing.T) {
	assert.Equal(t, "Applicant 42", AnonymousLabel(42))
}

func TestProjectApplications_ProjectsEach(t *testing.T) {
	a := sampleApplication()
	b := sampleApplication()
	b.ID = 8
	b.ApplicantID = 12

	views := ProjectApplications([]models.Application{a, b}, a.EmployerID, models.RoleEmployer)

	require.Len(t, views, 2)
	assert.Equal(t, "Applicant 11", views[0].Applicant.Name)
	assert.Equal(t, "Applicant 12", views[1].Applicant.Name)
}
