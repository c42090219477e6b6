package models

import (
	"time"

	"gorm.io/gorm"
)

type AppRole string

const (
	RoleJobSeeker AppRole = "jobseeker"
	RoleEmployer  AppRole = "employer"
	RoleAdmin     AppRole = "admin"
)

type User struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"size:100;not null"`
	Email    string  `gorm:"size:100;uniqueIndex;not null"`
	Phone    string  `gorm:"size:15;not null"`
	Password string  `gorm:"size:255;not null"`
	Role     AppRole `gorm:"size:20;not null;default:jobseeker"`

	// Job seeker profile
	Skills           StringList  `gorm:"type:jsonb"`
	Experience       string      `gorm:"size:20"`
	Education        string      `gorm:"size:50"`
	Resume           string      `gorm:"size:255"`
	Bio              string      `gorm:"type:text"`
	PreferredJobType string      `gorm:"size:20"`
	ExpectedSalary   SalaryRange `gorm:"type:jsonb"`
	SavedJobs        UintList    `gorm:"type:jsonb"`

	// Employer profile
	CompanyName        string `gorm:"size:100"`
	CompanySize        string `gorm:"size:20"`
	CompanyType        string `gorm:"size:50"`
	CompanyDescription string `gorm:"type:text"`
	CompanyWebsite     string `gorm:"size:255"`

	// Common
	CurrentLocation    string     `gorm:"size:100"`
	LocalArea          string     `gorm:"size:100"`
	LanguagesKnown     StringList `gorm:"type:jsonb"`
	IsVerified         bool       `gorm:"default:false"`
	IsActive           bool       `gorm:"default:true"`
	LastLogin          *time.Time
	RefreshToken       string `gorm:"type:text"`
	ResetPasswordToken string `gorm:"size:255"`
	ResetPasswordExp   *time.Time

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
