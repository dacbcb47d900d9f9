package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/softventure/timesheet-backend-go/internal/domain/dailyreport"
	"github.com/softventure/timesheet-backend-go/internal/pkg/database"
)

type dailyReportRepository struct {
	db *database.DB
}

func NewDailyReportRepository(db *database.DB) dailyreport.DailyReportRepository {
	return &dailyReportRepository{db: db}
}

// GetByEmployeeAndDate implements dailyreport.DailyReportRepository.
func (r *dailyReportRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), work_summary, problems,
			   challenges, tomorrow_tasks, thoughts, created_at, updated_at
		FROM daily_reports
		WHERE employee_id = $1 AND date = $2
	`

	var rep dailyreport.DailyReport
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rep.ID, &rep.EmployeeID, &rep.Date, &rep.WorkSummary, &rep.Problems,
		&rep.Challenges, &rep.TomorrowTasks, &rep.Thoughts, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dailyreport.DailyReport{}, dailyreport.ErrDailyReportNotFound
		}
		return dailyreport.DailyReport{}, fmt.Errorf("failed to get daily report: %w", err)
	}

	return rep, nil
}

// Upsert implements dailyreport.DailyReportRepository.
func (r *dailyReportRepository) Upsert(ctx context.Context, rep dailyreport.DailyReport) (dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_reports (
			employee_id, date, work_summary, problems, challenges, tomorrow_tasks, thoughts
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			work_summary = EXCLUDED.work_summary,
			problems = EXCLUDED.problems,
			challenges = EXCLUDED.challenges,
			tomorrow_tasks = EXCLUDED.tomorrow_tasks,
			thoughts = EXCLUDED.thoughts,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rep.EmployeeID,
		rep.Date,
		rep.WorkSummary,
		rep.Problems,
		rep.Challenges,
		rep.TomorrowTasks,
		rep.Thoughts,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)

	if err != nil {
		return dailyreport.DailyReport{}, fmt.Errorf("failed to upsert daily report: %w", err)
	}

	return rep, nil
}
