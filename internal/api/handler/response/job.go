package response

import (
	"time"

	"jobboard/internal/api/models"
)

type Job struct {
	ID               uint               `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Requirements     []string           `json:"requirements,omitempty"`
	Responsibilities []string           `json:"responsibilities,omitempty"`
	CompanyID        uint               `json:"companyId"`
	CompanyName      string             `json:"companyName"`
	Location         models.JobLocation `json:"location"`
	JobType          string             `json:"jobType"`
	WorkMode         string             `json:"workMode"`
	Category         string             `json:"category"`
	ExperienceReq    string             `json:"experienceRequired"`
	EducationReq     string             `json:"educationRequired"`
	Skills           []string           `json:"skills,omitempty"`
	Salary           models.SalaryRange `json:"salary"`
	Vacancies        int                `json:"vacancies"`
	LanguagesReq     []string           `json:"languagesRequired,omitempty"`
	Benefits         []string           `json:"benefits,omitempty"`
	Status           string             `json:"status"`
	IsVerified       bool               `json:"isVerified"`
	IsFeatured       bool               `json:"isFeatured"`
	IsUrgent         bool               `json:"isUrgent"`
	Views            int                `json:"views"`
	ApplicationCount int                `json:"applicationCount"`
	Tags             []string           `json:"tags,omitempty"`
	ExpiryDate       *time.Time         `json:"expiryDate,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// JobSummary is the compact job shape embedded in application responses.
type JobSummary struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	CompanyName string             `json:"companyName"`
	Location    models.JobLocation `json:"location"`
	JobType     string             `json:"jobType"`
	Salary      models.SalaryRange `json:"salary"`
}
