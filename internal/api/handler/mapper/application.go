package mapper

import (
	"fmt"

	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
)

// AnonymousLabel is the deterministic pseudonym shown to an employer while
// identity access has not been granted.
func AnonymousLabel(applicantID uint) string {
	return fmt.Sprintf("Applicant %d", applicantID)
}

// ProjectApplication builds the view of one application for a given viewer.
// It is the single place that applies the redaction policy: the applicant
// always sees their own data, the admin sees everything, and the owning
// employer sees the real identity (name, email, phone, resume) only once
// access has been granted. The supplementary details block is visible to
// the owning employer in every state.
//
// Callers must have verified that the viewer is the applicant, the owning
// employer, or an admin; the projection never constructs a view for anyone
// else.
func ProjectApplication(app models.Application, viewerID uint, viewerRole models.AppRole) response.ApplicationView {
	view := response.ApplicationView{
		ID:                app.ID,
		JobID:             app.JobID,
		CoverLetter:       app.CoverLetter,
		Status:            string(app.Status),
		InterviewDate:     app.InterviewDate,
		InterviewLocation: app.InterviewLocation,
		InterviewNotes:    app.InterviewNotes,
		Rating:            app.Rating,
		AccessRequested:   app.DetailsAccessRequested,
		AccessGranted:     app.DetailsAccessGranted,
		AccessRequestedAt: app.DetailsAccessRequestedAt,
		AccessGrantedAt:   app.DetailsAccessGrantedAt,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
	if app.Job.ID != 0 {
		summary := ToJobSummary(app.Job)
		view.Job = &summary
	}

	revealed := viewerRole == models.RoleAdmin ||
		viewerID == app.ApplicantID ||
		app.AccessState() == models.AccessGranted

	details := app.Details
	applicant := response.ApplicantView{
		ID:              app.ApplicantID,
		Experience:      details.Experience,
		CurrentLocation: details.CurrentLocation,
		CurrentJobTitle: details.CurrentJobTitle,
		Skills:          details.Skills,
		Education:       details.Education,
		ExpectedSalary:  details.ExpectedSalary,
		NoticePeriod:    details.NoticePeriod,
	}

	if revealed {
		applicant.Name = details.Name
		applicant.Email = details.Email
		applicant.Phone = details.Phone
		if app.Applicant.ID != 0 {
			// The account record wins over the apply-time blob for identity.
			applicant.Name = app.Applicant.Name
			applicant.Email = app.Applicant.Email
			applicant.Phone = app.Applicant.Phone
		}
		view.Resume = app.Resume
	} else {
		applicant.Name = AnonymousLabel(app.ApplicantID)
		applicant.Anonymous = true
	}

	view.Applicant = applicant
	return view
}

// ProjectApplications projects a slice for one viewer.
func ProjectApplications(apps []models.Application, viewerID uint, viewerRole models.AppRole) []response.ApplicationView {
	out := make([]response.ApplicationView, len(apps))
	for i, app := range apps {
		out[i] = ProjectApplication(app, viewerID, viewerRole)
	}
	return out
}

// ToAccessRequestItem shapes one row of the admin access-request queue.
// The admin sees real identities here by definition.
func ToAccessRequestItem(app models.Application) response.AccessRequestItem {
	return response.AccessRequestItem{
		ApplicationID: app.ID,
		Job:           ToJobSummary(app.Job),
		EmployerID:    app.EmployerID,
		EmployerName:  app.Employer.Name,
		CompanyName:   app.Employer.CompanyName,
		ApplicantID:   app.ApplicantID,
		ApplicantName: app.Applicant.Name,
		RequestedAt:   app.DetailsAccessRequestedAt,
	}
}
