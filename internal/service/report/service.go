package report

import (
	"context"
	"fmt"
	"time"

	"github.com/softventure/timesheet-backend-go/internal/domain/holiday"
	"github.com/softventure/timesheet-backend-go/internal/domain/record"
	"github.com/softventure/timesheet-backend-go/internal/domain/report"
	"github.com/softventure/timesheet-backend-go/internal/domain/worktime"
	worktimeService "github.com/softventure/timesheet-backend-go/internal/service/worktime"
)

type MonthlyReportServiceImpl struct {
	report.MonthlyReportRepository
	record.WorkRecordRepository
	holiday.HolidayRepository
	calculator *worktimeService.Calculator
}

func NewMonthlyReportService(
	monthlyReportRepo report.MonthlyReportRepository,
	workRecordRepo record.WorkRecordRepository,
	holidayRepo holiday.HolidayRepository,
	calculator *worktimeService.Calculator,
) report.MonthlyReportService {
	return &MonthlyReportServiceImpl{
		MonthlyReportRepository: monthlyReportRepo,
		WorkRecordRepository:    workRecordRepo,
		HolidayRepository:       holidayRepo,
		calculator:              calculator,
	}
}

// Get implements report.MonthlyReportService.
func (s *MonthlyReportServiceImpl) Get(ctx context.Context, req report.MonthRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	rep, err := s.MonthlyReportRepository.GetOrCreate(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to get monthly report: %w", err)
	}

	return report.ToResponse(rep), nil
}

// Summary implements report.MonthlyReportService.
func (s *MonthlyReportServiceImpl) Summary(ctx context.Context, req report.MonthRequest) (report.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SummaryResponse{}, err
	}

	rep, err := s.MonthlyReportRepository.GetOrCreate(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return report.SummaryResponse{}, fmt.Errorf("failed to get monthly report: %w", err)
	}

	rows, err := s.WorkRecordRepository.GetMonth(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return report.SummaryResponse{}, fmt.Errorf("failed to load month records: %w", err)
	}

	holidays, err := s.HolidayRepository.ListByYear(ctx, req.Year)
	if err != nil {
		return report.SummaryResponse{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}
	calendar := holiday.NewCalendar(holidays)

	entries := make([]worktime.DayEntry, 0, len(rows))
	days := make([]worktime.DailySummary, 0, len(rows))
	for _, row := range rows {
		summary := s.calculator.DailySummary(worktime.WorkDayRecord{
			StartTime:         row.StartTime,
			EndTime:           row.EndTime,
			BreakTime:         row.BreakTime,
			NightBreakTime:    row.NightBreakTime,
			HolidayType:       row.HolidayType,
			IsCalendarHoliday: calendar.IsCalendarHoliday(row.Date),
			AttendanceType:    row.AttendanceType,
		})
		entries = append(entries, worktime.DayEntry{
			AttendanceType: row.AttendanceType,
			HolidayType:    row.HolidayType,
			Summary:        summary,
		})
		days = append(days, summary)
	}

	monthly := s.calculator.MonthlySummary(entries)
	applyOverrides(&monthly, rep.Overrides)

	return report.SummaryResponse{
		Report:  report.ToResponse(rep),
		Summary: monthly,
		Days:    days,
	}, nil
}

// applyOverrides replaces computed day counts with manually entered ones
// where present. Computed values remain the default.
func applyOverrides(summary *worktime.MonthlySummary, overrides report.CountOverrides) {
	if overrides.AbsentDays != nil {
		summary.AbsentDays = *overrides.AbsentDays
	}
	if overrides.PaidHolidays != nil {
		summary.PaidHolidays = *overrides.PaidHolidays
	}
	if overrides.CompensatoryHolidays != nil {
		summary.CompensatoryHolidays = *overrides.CompensatoryHolidays
	}
	if overrides.TransferHolidays != nil {
		summary.TransferHolidays = *overrides.TransferHolidays
	}
	if overrides.LateDays != nil {
		summary.LateDays = *overrides.LateDays
	}
	if overrides.EarlyLeaveDays != nil {
		summary.EarlyLeaveDays = *overrides.EarlyLeaveDays
	}
}

// Transition implements report.MonthlyReportService. The status read here is
// the precondition for the guarded update; if another writer moves the report
// in between, the update matches no rows and the caller gets
// report.ErrStatusConflict to re-read and retry.
func (s *MonthlyReportServiceImpl) Transition(ctx context.Context, req report.TransitionRequest, actor report.Actor) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	rep, err := s.MonthlyReportRepository.GetOrCreate(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to get monthly report: %w", err)
	}

	updated, err := report.AttemptTransition(rep, req.Transition, actor, time.Now(), req.Reason)
	if err != nil {
		return report.ReportResponse{}, err
	}

	persisted, err := s.MonthlyReportRepository.UpdateGuarded(ctx, updated, rep.Status)
	if err != nil {
		return report.ReportResponse{}, err
	}

	return report.ToResponse(persisted), nil
}

// SetOverrides implements report.MonthlyReportService.
func (s *MonthlyReportServiceImpl) SetOverrides(ctx context.Context, req report.OverridesRequest, actor report.Actor) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	rep, err := s.MonthlyReportRepository.GetOrCreate(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to get monthly report: %w", err)
	}

	if !report.MayEdit(rep.Status, actor.EmployeeID == rep.EmployeeID) {
		return report.ReportResponse{}, report.ErrReportLocked
	}

	if err := s.MonthlyReportRepository.UpdateOverrides(ctx, rep.ID, req.Overrides); err != nil {
		return report.ReportResponse{}, err
	}

	rep.Overrides = req.Overrides
	return report.ToResponse(rep), nil
}
