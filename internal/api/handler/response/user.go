package response

import "time"

type UserResponseDTO struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Role            string     `json:"role"`
	Skills          []string   `json:"skills,omitempty"`
	Experience      string     `json:"experience,omitempty"`
	Education       string     `json:"education,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	CompanyName     string     `json:"companyName,omitempty"`
	CurrentLocation string     `json:"currentLocation,omitempty"`
	LocalArea       string     `json:"localArea,omitempty"`
	LanguagesKnown  []string   `json:"languagesKnown,omitempty"`
	IsVerified      bool       `json:"isVerified"`
	IsActive        bool       `json:"isActive"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type AuthResponseDTO struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	User         UserResponseDTO `json:"user"`
}

// CompanyResponseDTO is the public employer profile.
type CompanyResponseDTO struct {
	ID                 uint   `json:"id"`
	CompanyName        string `json:"companyName"`
	CompanySize        string `json:"companySize,omitempty"`
	CompanyType        string `json:"companyType,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CurrentLocation    string `json:"currentLocation,omitempty"`
	IsVerified         bool   `json:"isVerified"`
	ActiveJobs         int    `json:"activeJobs"`
}
