package request

import "jobboard/internal/api/models"

type CreateJob struct {
	Title            string             `json:"title" validate:"required,max=200"`
	Description      string             `json:"description" validate:"required"`
	Requirements     []string           `json:"requirements"`
	Responsibilities []string           `json:"responsibilities"`
	Location         models.JobLocation `json:"location" validate:"required"`
	JobType          string             `json:"jobType" validate:"required,oneof=fulltime parttime contract internship"`
	WorkMode         string             `json:"workMode" validate:"required,oneof=office remote hybrid"`
	Category         string             `json:"category" validate:"required"`
	ExperienceReq    string             `json:"experienceRequired" validate:"required"`
	EducationReq     string             `json:"educationRequired" validate:"required"`
	Skills           []string           `json:"skills"`
	Salary           models.SalaryRange `json:"salary" validate:"required"`
	Vacancies        int                `json:"vacancies"`
	LanguagesReq     []string           `json:"languagesRequired"`
	Benefits         []string           `json:"benefits"`
	Tags             []string           `json:"tags"`
	IsUrgent         bool               `json:"isUrgent"`
}

type UpdateJob struct {
	Title         *string             `json:"title"`
	Description   *string             `json:"description"`
	Requirements  *[]string           `json:"requirements"`
	Location      *models.JobLocation `json:"location"`
	JobType       *string             `json:"jobType"`
	WorkMode      *string             `json:"workMode"`
	Category      *string             `json:"category"`
	ExperienceReq *string             `json:"experienceRequired"`
	EducationReq  *string             `json:"educationRequired"`
	Skills        *[]string           `json:"skills"`
	Salary        *models.SalaryRange `json:"salary"`
	Vacancies     *int                `json:"vacancies"`
	Benefits      *[]string           `json:"benefits"`
	Status        *string             `json:"status"`
	IsUrgent      *bool               `json:"isUrgent"`
	ExpiryDate    *string             `json:"expiryDate"`
}
