package response

import (
	"time"

	"jobboard/internal/api/models"
)

// ApplicantView is the identity block of an application response. While the
// reveal workflow has not granted access to the viewing employer, Name
// carries the pseudonymous label and Email/Phone/Resume stay empty.
type ApplicantView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Anonymous bool   `json:"anonymous"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`

	// Supplementary data, never gated.
	Experience      string             `json:"experience,omitempty"`
	CurrentLocation string             `json:"currentLocation,omitempty"`
	CurrentJobTitle string             `json:"currentJobTitle,omitempty"`
	Skills          []string           `json:"skills,omitempty"`
	Education       string             `json:"education,omitempty"`
	ExpectedSalary  models.SalaryRange `json:"expectedSalary,omitempty"`
	NoticePeriod    string             `json:"noticePeriod,omitempty"`
}

// ApplicationView is the projection of one application for a given viewer.
type ApplicationView struct {
	ID          uint          `json:"id"`
	JobID       uint          `json:"jobId"`
	Job         *JobSummary   `json:"job,omitempty"`
	Applicant   ApplicantView `json:"applicant"`
	CoverLetter string        `json:"coverLetter,omitempty"`
	Resume      string        `json:"resume,omitempty"`
	Status      string        `json:"status"`

	InterviewDate     *time.Time `json:"interviewDate,omitempty"`
	InterviewLocation string     `json:"interviewLocation,omitempty"`
	InterviewNotes    string     `json:"interviewNotes,omitempty"`
	Rating            *int       `json:"rating,omitempty"`

	AccessRequested   bool       `json:"accessRequested"`
	AccessGranted     bool       `json:"accessGranted"`
	AccessRequestedAt *time.Time `json:"accessRequestedAt,omitempty"`
	AccessGrantedAt   *time.Time `json:"accessGrantedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AccessRequestItem is one row of the admin access-request queue.
type AccessRequestItem struct {
	ApplicationID uint       `json:"applicationId"`
	Job           JobSummary `json:"job"`
	EmployerID    uint       `json:"employerId"`
	EmployerName  string     `json:"employerName"`
	CompanyName   string     `json:"companyName"`
	ApplicantID   uint       `json:"applicantId"`
	ApplicantName string     `json:"applicantName"`
	RequestedAt   *time.Time `json:"requestedAt"`
}
