package service

import (
	"context"
	"time"

	"jobboard"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
	"jobboard/internal/api/repo"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const topCompaniesLimit = 10

// ReportService backs the admin reporting endpoints with the pgx
// aggregation queries.
type ReportService struct {
	reportRepo *repo.ReportRepository
	dashboard  *DashboardService
	logger     zerolog.Logger
}

func NewReportService(db *gorm.DB, pool *pgxpool.Pool) *ReportService {
	return &ReportService{
		reportRepo: repo.NewReportRepository(pool),
		dashboard:  NewDashboardService(db, nil),
		logger:     jobboard.Logger,
	}
}

func (slf *ReportService) UserGrowth(ctx context.Context, days int) (response.UserGrowthReport, error) {
	days = clampDays(days)
	since := time.Now().AddDate(0, 0, -days)

	seekers, err := slf.reportRepo.UserGrowth(ctx, string(models.RoleJobSeeker), since)
	if err != nil {
		return response.UserGrowthReport{}, err
	}
	employers, err := slf.reportRepo.UserGrowth(ctx, string(models.RoleEmployer), since)
	if err != nil {
		return response.UserGrowthReport{}, err
	}
	return response.UserGrowthReport{Days: days, JobSeekers: seekers, Employers: employers}, nil
}

func (slf *ReportService) Jobs(ctx context.Context) (response.JobsReport, error) {
	byCategory, err := slf.reportRepo.JobsByCategory(ctx)
	if err != nil {
		return response.JobsReport{}, err
	}
	var total int64
	for _, c := range byCategory {
		total += c.Count
	}
	return response.JobsReport{TotalActive: total, ByCategory: byCategory}, nil
}

func (slf *ReportService) Applications(ctx context.Context, days int) (response.ApplicationsReport, error) {
	days = clampDays(days)
	since := time.Now().AddDate(0, 0, -days)

	byStatus, err := slf.reportRepo.ApplicationsByStatus(ctx, since)
	if err != nil {
		return response.ApplicationsReport{}, err
	}
	perDay, err := slf.reportRepo.ApplicationsPerDay(ctx, since)
	if err != nil {
		return response.ApplicationsReport{}, err
	}
	return response.ApplicationsReport{Days: days, ByStatus: byStatus, PerDay: perDay}, nil
}

func (slf *ReportService) PlatformOverview(ctx context.Context) (response.PlatformOverviewReport, error) {
	stats, err := slf.dashboard.AdminStats()
	if err != nil {
		return response.PlatformOverviewReport{}, err
	}
	top, err := slf.reportRepo.TopCompanies(ctx, topCompaniesLimit)
	if err != nil {
		return response.PlatformOverviewReport{}, err
	}
	requested, granted, err := slf.reportRepo.AccessRequestFunnel(ctx)
	if err != nil {
		return response.PlatformOverviewReport{}, err
	}
	return response.PlatformOverviewReport{
		Stats:                 stats,
		TopCompanies:          top,
		AccessRequestsTotal:   requested,
		AccessRequestsGranted: granted,
	}, nil
}

func clampDays(days int) int {
	if days < 1 {
		return 30
	}
	if days > 365 {
		return 365
	}
	return days
}
