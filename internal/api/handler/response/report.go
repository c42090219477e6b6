package response

import "jobboard/internal/api/repo"

type UserGrowthReport struct {
	Days       int               `json:"days"`
	JobSeekers []repo.DailyCount `json:"jobSeekers"`
	Employers  []repo.DailyCount `json:"employers"`
}

type JobsReport struct {
	TotalActive int64             `json:"totalActive"`
	ByCategory  []repo.LabelCount `json:"byCategory"`
}

type ApplicationsReport struct {
	Days     int               `json:"days"`
	ByStatus []repo.LabelCount `json:"byStatus"`
	PerDay   []repo.DailyCount `json:"perDay"`
}

type PlatformOverviewReport struct {
	Stats                 AdminStats        `json:"stats"`
	TopCompanies          []repo.LabelCount `json:"topCompanies"`
	AccessRequestsTotal   int64             `json:"accessRequestsTotal"`
	AccessRequestsGranted int64             `json:"accessRequestsGranted"`
}
