package request

// ApplyDTO is bound from the multipart form of POST /applications/:jobId.
// The resume file itself is read separately from the form.
type ApplyDTO struct {
	CoverLetter     string   `form:"coverLetter"`
	Name            string   `form:"name"`
	Email           string   `form:"email"`
	Phone           string   `form:"phone"`
	Experience      string   `form:"experience"`
	CurrentLocation string   `form:"currentLocation"`
	CurrentJobTitle string   `form:"currentJobTitle"`
	Skills          []string `form:"skills"`
	Education       string   `form:"education"`
	ExpectedSalary  int      `form:"expectedSalary"`
	NoticePeriod    string   `form:"noticePeriod"`
}

type UpdateStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing shortlisted rejected interview_scheduled hired"`
	Note   string `json:"note"`
}

type RateApplicationDTO struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Notes  string `json:"notes"`
}

type ScheduleInterviewDTO struct {
	Date     string `json:"date" validate:"required"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}
