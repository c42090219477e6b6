package mapper

import (
	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
)

// ApplyProfileUpdate copies the set fields of a profile update onto the
// entity. Email and role are deliberately not updatable here.
func ApplyProfileUpdate(user *models.User, req request.UpdateProfileDTO) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Skills != nil {
		user.Skills = models.StringList(*req.Skills)
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.PreferredJobType != nil {
		user.PreferredJobType = *req.PreferredJobType
	}
	if req.CurrentLocation != nil {
		user.CurrentLocation = *req.CurrentLocation
	}
	if req.LocalArea != nil {
		user.LocalArea = *req.LocalArea
	}
	if req.LanguagesKnown != nil {
		user.LanguagesKnown = models.StringList(*req.LanguagesKnown)
	}
	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.CompanySize != nil {
		user.CompanySize = *req.CompanySize
	}
	if req.CompanyType != nil {
		user.CompanyType = *req.CompanyType
	}
	if req.CompanyDescription != nil {
		user.CompanyDescription = *req.CompanyDescription
	}
	if req.CompanyWebsite != nil {
		user.CompanyWebsite = *req.CompanyWebsite
	}
}

func EntityToUserResponse(user models.User) response.UserResponseDTO {
	return response.UserResponseDTO{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone,
		Role:            string(user.Role),
		Skills:          []string(user.Skills),
		Experience:      user.Experience,
		Education:       user.Education,
		Bio:             user.Bio,
		CompanyName:     user.CompanyName,
		CurrentLocation: user.CurrentLocation,
		LocalArea:       user.LocalArea,
		LanguagesKnown:  []string(user.LanguagesKnown),
		IsVerified:      user.IsVerified,
		IsActive:        user.IsActive,
		LastLogin:       user.LastLogin,
		CreatedAt:       user.CreatedAt,
	}
}

func EntityToCompanyResponse(user models.User, activeJobs int) response.CompanyResponseDTO {
	return response.CompanyResponseDTO{
		ID:                 user.ID,
		CompanyName:        user.CompanyName,
		CompanySize:        user.CompanySize,
		CompanyType:        user.CompanyType,
		CompanyDescription: user.CompanyDescription,
		CompanyWebsite:     user.CompanyWebsite,
		CurrentLocation:    user.CurrentLocation,
		IsVerified:         user.IsVerified,
		ActiveJobs:         activeJobs,
	}
}
