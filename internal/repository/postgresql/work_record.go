package postgresql

import (
	"context"
	"fmt"

	"github.com/softventure/timesheet-backend-go/internal/domain/record"
	"github.com/softventure/timesheet-backend-go/internal/domain/worktime"
	"github.com/softventure/timesheet-backend-go/internal/pkg/database"
)

type workRecordRepository struct {
	db *database.DB
}

func NewWorkRecordRepository(db *database.DB) record.WorkRecordRepository {
	return &workRecordRepository{db: db}
}

// GetMonth implements record.WorkRecordRepository.
func (r *workRecordRepository) GetMonth(ctx context.Context, employeeID int64, year, month int) ([]record.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_time, end_time, break_time, night_break_time,
			   attendance_type, holiday_type, work_content, special_notes
		FROM work_records
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get month records: %w", err)
	}
	defer rows.Close()

	var records []record.WorkRecord
	for rows.Next() {
		var rec record.WorkRecord
		var attendanceType, holidayType *string
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.StartTime, &rec.EndTime,
			&rec.BreakTime, &rec.NightBreakTime, &attendanceType, &holidayType,
			&rec.WorkContent, &rec.SpecialNotes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work record: %w", err)
		}
		if attendanceType != nil {
			rec.AttendanceType = worktime.AttendanceType(*attendanceType)
		}
		if holidayType != nil {
			rec.HolidayType = worktime.HolidayType(*holidayType)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// UpsertDay implements record.WorkRecordRepository.
func (r *workRecordRepository) UpsertDay(ctx context.Context, rec record.WorkRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_records (
			employee_id, date, start_time, end_time, break_time, night_break_time,
			attendance_type, holiday_type, work_content, special_notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_time = EXCLUDED.break_time,
			night_break_time = EXCLUDED.night_break_time,
			attendance_type = EXCLUDED.attendance_type,
			holiday_type = EXCLUDED.holiday_type,
			work_content = EXCLUDED.work_content,
			special_notes = EXCLUDED.special_notes
	`

	_, err := q.Exec(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.StartTime,
		rec.EndTime,
		rec.BreakTime,
		rec.NightBreakTime,
		nullableString(string(rec.AttendanceType)),
		nullableString(string(rec.HolidayType)),
		rec.WorkContent,
		rec.SpecialNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert work record: %w", err)
	}

	return nil
}

// nullableString maps the enum zero value to SQL NULL.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ClearSpecialNotes implements record.WorkRecordRepository.
func (r *workRecordRepository) ClearSpecialNotes(ctx context.Context, employeeID int64, year, month int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_records
		SET special_notes = NULL
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
	`

	if _, err := q.Exec(ctx, query, employeeID, year, month); err != nil {
		return fmt.Errorf("failed to clear special notes: %w", err)
	}

	return nil
}
