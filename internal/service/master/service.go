package master

import (
	"context"
	"fmt"

	"github.com/softventure/timesheet-backend-go/internal/domain/company"
	"github.com/softventure/timesheet-backend-go/internal/domain/holiday"
)

// MasterService serves the small reference datasets the front end needs to
// render the timesheet screen.
type MasterService interface {
	ListCompanies(ctx context.Context) ([]company.Company, error)
	// HolidaysByYear returns the registered holidays as a date -> name map,
	// dates formatted YYYY-MM-DD.
	HolidaysByYear(ctx context.Context, year int) (map[string]string, error)
}

type MasterServiceImpl struct {
	company.CompanyRepository
	holiday.HolidayRepository
}

func NewMasterService(companyRepo company.CompanyRepository, holidayRepo holiday.HolidayRepository) MasterService {
	return &MasterServiceImpl{
		CompanyRepository: companyRepo,
		HolidayRepository: holidayRepo,
	}
}

func (s *MasterServiceImpl) ListCompanies(ctx context.Context) ([]company.Company, error) {
	companies, err := s.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *MasterServiceImpl) HolidaysByYear(ctx context.Context, year int) (map[string]string, error) {
	holidays, err := s.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holiday.NewCalendar(holidays).Names(), nil
}
