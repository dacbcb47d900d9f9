package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/softventure/timesheet-backend-go/internal/domain/report"
	"github.com/softventure/timesheet-backend-go/internal/pkg/database"
)

type monthlyReportRepository struct {
	db *database.DB
}

func NewMonthlyReportRepository(db *database.DB) report.MonthlyReportRepository {
	return &monthlyReportRepository{db: db}
}

const monthlyReportColumns = `id, employee_id, year, month, status, special_notes,
	submitted_date, manager_approval_date, accounting_approval_date, approval_date,
	remand_reason, absent_days_override, paid_holidays_override,
	compensatory_holidays_override, transfer_holidays_override,
	late_days_override, early_leave_days_override, created_at, updated_at`

func scanMonthlyReport(row pgx.Row) (report.MonthlyReport, error) {
	var rep report.MonthlyReport
	err := row.Scan(
		&rep.ID, &rep.EmployeeID, &rep.Year, &rep.Month, &rep.Status, &rep.SpecialNotes,
		&rep.SubmittedDate, &rep.ManagerApprovalDate, &rep.AccountingApprovalDate, &rep.ApprovalDate,
		&rep.RemandReason, &rep.Overrides.AbsentDays, &rep.Overrides.PaidHolidays,
		&rep.Overrides.CompensatoryHolidays, &rep.Overrides.TransferHolidays,
		&rep.Overrides.LateDays, &rep.Overrides.EarlyLeaveDays, &rep.CreatedAt, &rep.UpdatedAt,
	)
	return rep, err
}

// GetByMonth implements report.MonthlyReportRepository.
func (r *monthlyReportRepository) GetByMonth(ctx context.Context, employeeID int64, year, month int) (report.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM monthly_reports
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`, monthlyReportColumns)

	rep, err := scanMonthlyReport(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.MonthlyReport{}, report.ErrReportNotFound
		}
		return report.MonthlyReport{}, fmt.Errorf("failed to get monthly report: %w", err)
	}

	return rep, nil
}

// GetOrCreate implements report.MonthlyReportRepository. The insert races with
// concurrent callers; ON CONFLICT DO NOTHING plus a re-read keeps the month
// unique without failing either caller.
func (r *monthlyReportRepository) GetOrCreate(ctx context.Context, employeeID int64, year, month int) (report.MonthlyReport, error) {
	rep, err := r.GetByMonth(ctx, employeeID, year, month)
	if err == nil {
		return rep, nil
	}
	if !errors.Is(err, report.ErrReportNotFound) {
		return report.MonthlyReport{}, err
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_reports (employee_id, year, month, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, year, month) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, employeeID, year, month, report.StatusDraft); err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to create monthly report: %w", err)
	}

	return r.GetByMonth(ctx, employeeID, year, month)
}

// UpdateGuarded implements report.MonthlyReportRepository. The WHERE clause on
// the expected status makes the lifecycle's read-check-write a single atomic
// statement; zero affected rows means someone else moved the report first.
func (r *monthlyReportRepository) UpdateGuarded(ctx context.Context, rep report.MonthlyReport, expected report.Status) (report.MonthlyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_reports
		SET status = $1,
			submitted_date = $2,
			manager_approval_date = $3,
			accounting_approval_date = $4,
			approval_date = $5,
			remand_reason = $6,
			updated_at = NOW()
		WHERE id = $7 AND status = $8
	`

	tag, err := q.Exec(ctx, query,
		rep.Status,
		rep.SubmittedDate,
		rep.ManagerApprovalDate,
		rep.AccountingApprovalDate,
		rep.ApprovalDate,
		rep.RemandReason,
		rep.ID,
		expected,
	)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to update monthly report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return report.MonthlyReport{}, report.ErrStatusConflict
	}

	return rep, nil
}

// UpdateOverrides implements report.MonthlyReportRepository.
func (r *monthlyReportRepository) UpdateOverrides(ctx context.Context, id int64, overrides report.CountOverrides) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_reports
		SET absent_days_override = $1,
			paid_holidays_override = $2,
			compensatory_holidays_override = $3,
			transfer_holidays_override = $4,
			late_days_override = $5,
			early_leave_days_override = $6,
			updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		overrides.AbsentDays,
		overrides.PaidHolidays,
		overrides.CompensatoryHolidays,
		overrides.TransferHolidays,
		overrides.LateDays,
		overrides.EarlyLeaveDays,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update overrides: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}

	return nil
}

// UpdateSpecialNotes implements report.MonthlyReportRepository.
func (r *monthlyReportRepository) UpdateSpecialNotes(ctx context.Context, id int64, notes *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE monthly_reports
		SET special_notes = $1, updated_at = NOW()
		WHERE id = $2
	`, notes, id)
	if err != nil {
		return fmt.Errorf("failed to update special notes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}

	return nil
}
