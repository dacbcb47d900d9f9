package record

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/softventure/timesheet-backend-go/internal/domain/record"
	"github.com/softventure/timesheet-backend-go/internal/domain/report"
	"github.com/softventure/timesheet-backend-go/internal/pkg/database"
	"github.com/softventure/timesheet-backend-go/internal/repository/postgresql"
)

type WorkRecordServiceImpl struct {
	db *database.DB
	record.WorkRecordRepository
	report.MonthlyReportRepository
}

func NewWorkRecordService(
	db *database.DB,
	workRecordRepo record.WorkRecordRepository,
	monthlyReportRepo report.MonthlyReportRepository,
) record.WorkRecordService {
	return &WorkRecordServiceImpl{
		db:                      db,
		WorkRecordRepository:    workRecordRepo,
		MonthlyReportRepository: monthlyReportRepo,
	}
}

// GetMonth implements record.WorkRecordService.
func (s *WorkRecordServiceImpl) GetMonth(ctx context.Context, employeeID int64, year, month int) (record.MonthRecordsResponse, error) {
	rows, err := s.WorkRecordRepository.GetMonth(ctx, employeeID, year, month)
	if err != nil {
		return record.MonthRecordsResponse{}, fmt.Errorf("failed to load month records: %w", err)
	}

	resp := record.MonthRecordsResponse{Records: make([]record.DayRecord, 0, len(rows))}
	for _, row := range rows {
		resp.Records = append(resp.Records, record.DayRecord{
			Day:            row.Date.Day(),
			StartTime:      row.StartTime,
			EndTime:        row.EndTime,
			BreakTime:      row.BreakTime,
			NightBreakTime: row.NightBreakTime,
			AttendanceType: row.AttendanceType,
			HolidayType:    row.HolidayType,
			WorkContent:    row.WorkContent,
		})
		if resp.SpecialNotes == "" && row.SpecialNotes != nil {
			resp.SpecialNotes = *row.SpecialNotes
		}
	}

	return resp, nil
}

// SaveMonth implements record.WorkRecordService. The month's report gates the
// write: only its own employee may save, and only while the report is a draft
// or remanded. The whole month is written in one transaction.
func (s *WorkRecordServiceImpl) SaveMonth(ctx context.Context, req record.SaveMonthRequest, actor report.Actor) error {
	if err := req.Validate(); err != nil {
		return err
	}

	rep, err := s.MonthlyReportRepository.GetOrCreate(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return fmt.Errorf("failed to get monthly report: %w", err)
	}

	if !report.MayEdit(rep.Status, actor.EmployeeID == req.EmployeeID) {
		return report.ErrReportLocked
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.WorkRecordRepository.ClearSpecialNotes(txCtx, req.EmployeeID, req.Year, req.Month); err != nil {
			return err
		}

		for _, day := range req.Records {
			rec := record.WorkRecord{
				EmployeeID:     req.EmployeeID,
				Date:           time.Date(req.Year, time.Month(req.Month), day.Day, 0, 0, 0, 0, time.UTC),
				StartTime:      day.StartTime,
				EndTime:        day.EndTime,
				BreakTime:      day.BreakTime,
				NightBreakTime: day.NightBreakTime,
				AttendanceType: day.AttendanceType,
				HolidayType:    day.HolidayType,
				WorkContent:    day.WorkContent,
			}
			// Month-level notes live on the first day's row.
			if day.Day == 1 && req.SpecialNotes != "" {
				notes := req.SpecialNotes
				rec.SpecialNotes = &notes
			}
			if err := s.WorkRecordRepository.UpsertDay(txCtx, rec); err != nil {
				return err
			}
		}

		var notes *string
		if req.SpecialNotes != "" {
			notes = &req.SpecialNotes
		}
		return s.MonthlyReportRepository.UpdateSpecialNotes(txCtx, rep.ID, notes)
	})
}
