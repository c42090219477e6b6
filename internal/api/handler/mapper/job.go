package mapper

import (
	"time"

	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
)

func CreateJobToEntity(req request.CreateJob, company models.User) models.Job {
	vacancies := req.Vacancies
	if vacancies < 1 {
		vacancies = 1
	}
	return models.Job{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		CompanyID:        company.ID,
		CompanyName:      company.CompanyName,
		Location:         req.Location,
		JobType:          req.JobType,
		WorkMode:         req.WorkMode,
		Category:         req.Category,
		ExperienceReq:    req.ExperienceReq,
		EducationReq:     req.EducationReq,
		Skills:           req.Skills,
		Salary:           req.Salary,
		Vacancies:        vacancies,
		LanguagesReq:     req.LanguagesReq,
		Benefits:         req.Benefits,
		Tags:             req.Tags,
		IsUrgent:         req.IsUrgent,
		Status:           models.JobActive,
	}
}

// PatchJob turns the optional fields of an update request into a column map.
func PatchJob(req request.UpdateJob) map[string]any {
	patch := map[string]any{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Requirements != nil {
		patch["requirements"] = models.StringList(*req.Requirements)
	}
	if req.Location != nil {
		patch["location"] = *req.Location
	}
	if req.JobType != nil {
		patch["job_type"] = *req.JobType
	}
	if req.WorkMode != nil {
		patch["work_mode"] = *req.WorkMode
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}
	if req.ExperienceReq != nil {
		patch["experience_req"] = *req.ExperienceReq
	}
	if req.EducationReq != nil {
		patch["education_req"] = *req.EducationReq
	}
	if req.Skills != nil {
		patch["skills"] = models.StringList(*req.Skills)
	}
	if req.Salary != nil {
		patch["salary"] = *req.Salary
	}
	if req.Vacancies != nil {
		patch["vacancies"] = *req.Vacancies
	}
	if req.Benefits != nil {
		patch["benefits"] = models.StringList(*req.Benefits)
	}
	if req.Status != nil {
		patch["status"] = *req.Status
	}
	if req.IsUrgent != nil {
		patch["is_urgent"] = *req.IsUrgent
	}
	if req.ExpiryDate != nil {
		if t, err := time.Parse(time.RFC3339, *req.ExpiryDate); err == nil {
			patch["expiry_date"] = t
		}
	}
	return patch
}

func ToJobResponse(j models.Job) response.Job {
	return response.Job{
		ID:               j.ID,
		Title:            j.Title,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		CompanyID:        j.CompanyID,
		CompanyName:      j.CompanyName,
		Location:         j.Location,
		JobType:          j.JobType,
		WorkMode:         j.WorkMode,
		Category:         j.Category,
		ExperienceReq:    j.ExperienceReq,
		EducationReq:     j.EducationReq,
		Skills:           j.Skills,
		Salary:           j.Salary,
		Vacancies:        j.Vacancies,
		LanguagesReq:     j.LanguagesReq,
		Benefits:         j.Benefits,
		Status:           string(j.Status),
		IsVerified:       j.IsVerified,
		IsFeatured:       j.IsFeatured,
		IsUrgent:         j.IsUrgent,
		Views:            j.Views,
		ApplicationCount: j.ApplicationCount,
		Tags:             j.Tags,
		ExpiryDate:       j.ExpiryDate,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func ToJobResponses(entities []models.Job) []response.Job {
	out := make([]response.Job, len(entities))
	for i, j := range entities {
		out[i] = ToJobResponse(j)
	}
	return out
}

func ToJobSummary(j models.Job) response.JobSummary {
	return response.JobSummary{
		ID:          j.ID,
		Title:       j.Title,
		CompanyName: j.CompanyName,
		Location:    j.Location,
		JobType:     j.JobType,
		Salary:      j.Salary,
	}
}
