package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository runs the aggregate SQL behind the admin reports. These
// queries group over whole tables, so they go straight through pgx instead
// of the ORM.
type ReportRepository struct {
	Pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{Pool: pool}
}

type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// UserGrowth returns daily registration counts per role since the cutoff.
func (slf *ReportRepository) UserGrowth(ctx context.Context, role string, since time.Time) ([]DailyCount, error) {
	query := `
        SELECT date_trunc('day', created_at) AS day, COUNT(*) AS count
        FROM users
        WHERE created_at >= $1 AND role = $2 AND deleted_at IS NULL
        GROUP BY day
        ORDER BY day
    `
	rows, err := slf.Pool.Query(ctx, query, since, role)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return scanDailyCounts(rows)
}

// JobsByCategory returns active job counts grouped by category.
func (slf *ReportRepository) JobsByCategory(ctx context.Context) ([]LabelCount, error) {
	query := `
        SELECT category, COUNT(*) AS count
        FROM jobs
        WHERE status = 'active' AND deleted_at IS NULL
        GROUP BY category
        ORDER BY count DESC
    `
	rows, err := slf.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return scanLabelCounts(rows)
}

// ApplicationsByStatus returns application counts grouped by pipeline status.
func (slf *ReportRepository) ApplicationsByStatus(ctx context.Context, since time.Time) ([]LabelCount, error) {
	query := `
        SELECT status, COUNT(*) AS count
        FROM applications
        WHERE created_at >= $1 AND deleted_at IS NULL
        GROUP BY status
        ORDER BY count DESC
    `
	rows, err := slf.Pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return scanLabelCounts(rows)
}

// ApplicationsPerDay returns daily application volume since the cutoff.
func (slf *ReportRepository) ApplicationsPerDay(ctx context.Context, since time.Time) ([]DailyCount, error) {
	query := `
        SELECT date_trunc('day', created_at) AS day, COUNT(*) AS count
        FROM applications
        WHERE created_at >= $1 AND deleted_at IS NULL
        GROUP BY day
        ORDER BY day
    `
	rows, err := slf.Pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return scanDailyCounts(rows)
}

// TopCompanies returns employers ranked by received applications.
func (slf *ReportRepository) TopCompanies(ctx context.Context, limit int) ([]LabelCount, error) {
	query := `
        SELECT u.company_name, COUNT(a.id) AS count
        FROM applications a
        JOIN users u ON u.id = a.employer_id
        WHERE a.deleted_at IS NULL
        GROUP BY u.company_name
        ORDER BY count DESC
        LIMIT $1
    `
	rows, err := slf.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return scanLabelCounts(rows)
}

// AccessRequestFunnel returns the requested/granted totals for the
// identity-reveal workflow.
func (slf *ReportRepository) AccessRequestFunnel(ctx context.Context) (requested, granted int64, err error) {
	query := `
        SELECT
            COUNT(*) FILTER (WHERE details_access_requested),
            COUNT(*) FILTER (WHERE details_access_granted)
        FROM applications
        WHERE deleted_at IS NULL
    `
	err = slf.Pool.QueryRow(ctx, query).Scan(&requested, &granted)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return requested, granted, nil
}

func scanDailyCounts(rows pgx.Rows) ([]DailyCount, error) {
	var out []DailyCount
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

func scanLabelCounts(rows pgx.Rows) ([]LabelCount, error) {
	var out []LabelCount
	for rows.Next() {
		var lc LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}
