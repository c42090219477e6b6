package response

type EmployerDashboard struct {
	TotalJobs           int64             `json:"totalJobs"`
	ActiveJobs          int64             `json:"activeJobs"`
	TotalApplications   int64             `json:"totalApplications"`
	PendingReview       int64             `json:"pendingReview"`
	Shortlisted         int64             `json:"shortlisted"`
	InterviewsScheduled int64             `json:"interviewsScheduled"`
	Hired               int64             `json:"hired"`
	RecentApplications  []ApplicationView `json:"recentApplications"`
}

type JobSeekerDashboard struct {
	TotalApplications int64             `json:"totalApplications"`
	Pending           int64             `json:"pending"`
	Shortlisted       int64             `json:"shortlisted"`
	Interviews        int64             `json:"interviews"`
	Rejected          int64             `json:"rejected"`
	SavedJobs         []Job             `json:"savedJobs"`
	RecentUpdates     []ApplicationView `json:"recentUpdates"`
}

type AdminStats struct {
	TotalUsers            int64 `json:"totalUsers"`
	JobSeekers            int64 `json:"jobSeekers"`
	Employers             int64 `json:"employers"`
	TotalJobs             int64 `json:"totalJobs"`
	ActiveJobs            int64 `json:"activeJobs"`
	TotalApplications     int64 `json:"totalApplications"`
	PendingAccessRequests int64 `json:"pendingAccessRequests"`
}
