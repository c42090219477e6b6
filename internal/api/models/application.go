package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusPending            ApplicationStatus = "pending"
	StatusReviewing          ApplicationStatus = "reviewing"
	StatusShortlisted        ApplicationStatus = "shortlisted"
	StatusRejected           ApplicationStatus = "rejected"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	StatusHired              ApplicationStatus = "hired"
	StatusWithdrawn          ApplicationStatus = "withdrawn"
)

// NoResume is the sentinel stored when an applicant submits without a file.
const NoResume = "No resume provided"

// ApplicantDetails is the supplementary blob supplied at apply time. It is
// deliberately decoupled from the applicant's account profile so the same
// seeker can present different details per application. Name, email and
// phone inside it are identity and stay gated; the rest is visible to the
// owning employer regardless of access-grant state.
type ApplicantDetails struct {
	Name            string      `json:"name,omitempty"`
	Email           string      `json:"email,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	Experience      string      `json:"experience,omitempty"`
	CurrentLocation string      `json:"currentLocation,omitempty"`
	CurrentJobTitle string      `json:"currentJobTitle,omitempty"`
	Skills          []string    `json:"skills,omitempty"`
	Education       string      `json:"education,omitempty"`
	ExpectedSalary  SalaryRange `json:"expectedSalary,omitempty"`
	NoticePeriod    string      `json:"noticePeriod,omitempty"`
}

func (ad ApplicantDetails) Value() (driver.Value, error) {
	return json.Marshal(ad)
}

func (ad *ApplicantDetails) Scan(value interface{}) error {
	return scanJSON(value, ad)
}

type StatusChange struct {
	Status    ApplicationStatus `json:"status"`
	Note      string            `json:"note,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

type StatusHistory []StatusChange

func (sh StatusHistory) Value() (driver.Value, error) {
	if sh == nil {
		return "[]", nil
	}
	return json.Marshal(sh)
}

func (sh *StatusHistory) Scan(value interface{}) error {
	return scanJSON(value, sh)
}

type Application struct {
	ID          uint `gorm:"primaryKey"`
	JobID       uint `gorm:"not null;index;uniqueIndex:idx_job_applicant"`
	Job         Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	ApplicantID uint `gorm:"not null;uniqueIndex:idx_job_applicant"`
	Applicant   User `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
	EmployerID  uint `gorm:"not null;index"`
	Employer    User `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE"`

	CoverLetter string            `gorm:"type:text"`
	Resume      string            `gorm:"size:255;default:'No resume provided'"`
	Details     ApplicantDetails  `gorm:"type:jsonb"`
	Status      ApplicationStatus `gorm:"size:30;default:pending"`
	History     StatusHistory     `gorm:"type:jsonb"`

	InterviewDate     *time.Time
	InterviewLocation string `gorm:"size:255"`
	InterviewNotes    string `gorm:"type:text"`
	EmployerNotes     string `gorm:"type:text"`
	Rating            *int

	DetailsAccessRequested   bool `gorm:"default:false"`
	DetailsAccessRequestedAt *time.Time
	DetailsAccessGranted     bool `gorm:"default:false"`
	DetailsAccessGrantedAt   *time.Time
	DetailsAccessGrantedBy   *uint

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Application) TableName() string {
	return "applications"
}

// SetStatus changes the pipeline status and appends to the history trail.
func (a *Application) SetStatus(next ApplicationStatus, note string, now time.Time) {
	a.History = append(a.History, StatusChange{Status: next, Note: note, Timestamp: now})
	a.Status = next
}

// IsFinal reports whether the pipeline status is terminal.
func (s ApplicationStatus) IsFinal() bool {
	return s == StatusHired || s == StatusRejected || s == StatusWithdrawn
}
