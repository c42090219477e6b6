package models

import (
	"time"

	"gorm.io/gorm"
)

type JobStatus string

const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
	JobDraft  JobStatus = "draft"
)

type Job struct {
	ID               uint        `gorm:"primaryKey"`
	Title            string      `gorm:"size:200;not null"`
	Description      string      `gorm:"type:text;not null"`
	Requirements     StringList  `gorm:"type:jsonb"`
	Responsibilities StringList  `gorm:"type:jsonb"`
	CompanyID        uint        `gorm:"not null;index"`
	Company          User        `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	CompanyName      string      `gorm:"size:100;not null"`
	Location         JobLocation `gorm:"type:jsonb"`
	JobType          string      `gorm:"size:20;not null;default:fulltime"`
	WorkMode         string      `gorm:"size:20;not null;default:office"`
	Category         string      `gorm:"size:100;not null"`
	ExperienceReq    string      `gorm:"size:20;not null"`
	EducationReq     string      `gorm:"size:50;not null"`
	Skills           StringList  `gorm:"type:jsonb"`
	Salary           SalaryRange `gorm:"type:jsonb"`
	Vacancies        int         `gorm:"default:1"`
	LanguagesReq     StringList  `gorm:"type:jsonb"`
	Benefits         StringList  `gorm:"type:jsonb"`
	Status           JobStatus   `gorm:"size:20;default:active"`
	IsVerified       bool        `gorm:"default:false"`
	IsFeatured       bool        `gorm:"default:false"`
	IsUrgent         bool        `gorm:"default:false"`
	Views            int         `gorm:"default:0"`
	ApplicationCount int         `gorm:"default:0"`
	Tags             StringList  `gorm:"type:jsonb"`
	ExpiryDate       *time.Time

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Job) TableName() string {
	return "jobs"
}

// IsAccepting reports whether the job can still receive applications.
func (j Job) IsAccepting() bool {
	return j.Status == JobActive
}
