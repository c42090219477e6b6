package request

type RegisterDTO struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required,len=10"`
	Password       string   `json:"password" validate:"required,min=6"`
	Role           string   `json:"role" validate:"required,oneof=jobseeker employer"`
	CompanyName    string   `json:"companyName"`
	LanguagesKnown []string `json:"languagesKnown"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type UpdateProfileDTO struct {
	Name             *string   `json:"name"`
	Phone            *string   `json:"phone"`
	Skills           *[]string `json:"skills"`
	Experience       *string   `json:"experience"`
	Education        *string   `json:"education"`
	Bio              *string   `json:"bio"`
	PreferredJobType *string   `json:"preferredJobType"`
	CurrentLocation  *string   `json:"currentLocation"`
	LocalArea        *string   `json:"localArea"`
	LanguagesKnown   *[]string `json:"languagesKnown"`

	CompanyName        *string `json:"companyName"`
	CompanySize        *string `json:"companySize"`
	CompanyType        *string `json:"companyType"`
	CompanyDescription *string `json:"companyDescription"`
	CompanyWebsite     *string `json:"companyWebsite"`
}

type UpdatePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordDTO struct {
	Password string `json:"password" validate:"required,min=6"`
}
