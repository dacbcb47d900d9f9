package dailyreport

import (
	"context"
	"errors"
	"fmt"

	"github.com/softventure/timesheet-backend-go/internal/domain/dailyreport"
)

type DailyReportService interface {
	Get(ctx context.Context, employeeID int64, date string) (*dailyreport.DailyReport, error)
	Save(ctx context.Context, req dailyreport.SaveDailyReportRequest) (dailyreport.DailyReport, error)
}

type DailyReportServiceImpl struct {
	dailyreport.DailyReportRepository
}

func NewDailyReportService(repo dailyreport.DailyReportRepository) DailyReportService {
	return &DailyReportServiceImpl{DailyReportRepository: repo}
}

// Get returns nil without error when no report exists for the day; the
// frontend renders an empty form in that case.
func (s *DailyReportServiceImpl) Get(ctx context.Context, employeeID int64, date string) (*dailyreport.DailyReport, error) {
	rep, err := s.DailyReportRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, dailyreport.ErrDailyReportNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily report: %w", err)
	}
	return &rep, nil
}

// Save implements DailyReportService.
func (s *DailyReportServiceImpl) Save(ctx context.Context, req dailyreport.SaveDailyReportRequest) (dailyreport.DailyReport, error) {
	if err := req.Validate(); err != nil {
		return dailyreport.DailyReport{}, err
	}

	saved, err := s.DailyReportRepository.Upsert(ctx, dailyreport.DailyReport{
		EmployeeID:    req.EmployeeID,
		Date:          req.Date,
		WorkSummary:   req.WorkSummary,
		Problems:      req.Problems,
		Challenges:    req.Challenges,
		TomorrowTasks: req.TomorrowTasks,
		Thoughts:      req.Thoughts,
	})
	if err != nil {
		return dailyreport.DailyReport{}, fmt.Errorf("failed to save daily report: %w", err)
	}

	return saved, nil
}
