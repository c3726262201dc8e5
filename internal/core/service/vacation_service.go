package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
)

// VacationService implements vacation field validation, date/price policy and
// cascade-aware deletion.
type VacationService struct {
	vacations ports.VacationRepository
	countries ports.CountryRepository
	logger    zerolog.Logger
	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

func NewVacationService(vacations ports.VacationRepository, countries ports.CountryRepository, logger zerolog.Logger) *VacationService {
	return &VacationService{
		vacations: vacations,
		countries: countries,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns all vacations sorted by start date ascending, past ones
// included.
func (s *VacationService) List(ctx context.Context) ([]domain.Vacation, error) {
	return s.vacations.ListAll(ctx)
}

func (s *VacationService) Get(ctx context.Context, id int) (*domain.Vacation, error) {
	return s.vacations.GetByID(ctx, id)
}

// Add creates a vacation. The start date must be today or later; today is
// read once at call time.
func (s *VacationService) Add(ctx context.Context, input ports.AddVacationInput) (*domain.Vacation, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, &domain.MissingFieldError{Field: "description"}
	}
	if input.StartDate.IsZero() {
		return nil, &domain.MissingFieldError{Field: "start date"}
	}
	if input.EndDate.IsZero() {
		return nil, &domain.MissingFieldError{Field: "end date"}
	}
	if input.Price == nil {
		return nil, &domain.MissingFieldError{Field: "price"}
	}
	if *input.Price < domain.MinPrice || *input.Price > domain.MaxPrice {
		return nil, domain.ErrPriceOutOfRange
	}

	start := truncateToDate(input.StartDate)
	end := truncateToDate(input.EndDate)
	if end.Before(start) {
		return nil, domain.ErrEndBeforeStart
	}
	if start.Before(truncateToDate(s.now())) {
		return nil, domain.ErrPastStartDate
	}

	if _, err := s.countries.GetByID(ctx, input.CountryID); err != nil {
		return nil, err
	}

	vacation := &domain.Vacation{
		CountryID:   input.CountryID,
		Description: strings.TrimSpace(input.Description),
		StartDate:   start,
		EndDate:     end,
		Price:       *input.Price,
	}
	if trimmed := strings.TrimSpace(input.ImageName); trimmed != "" {
		vacation.ImageName = &trimmed
	}

	id, err := s.vacations.Insert(ctx, vacation)
	if err != nil {
		return nil, err
	}
	vacation.ID = id

	s.logger.Info().Int("vacation_id", id).Int("country_id", vacation.CountryID).Msg("vacation created")
	return vacation, nil
}

// Update merges the provided fields with the stored row and persists the
// result. Past start dates are allowed here so historical vacations stay
// editable.
func (s *VacationService) Update(ctx context.Context, id int, input ports.UpdateVacationInput) (*domain.Vacation, error) {
	existing, err := s.vacations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := ports.VacationUpdate{}

	countryID := existing.CountryID
	if input.CountryID != nil {
		if _, err := s.countries.GetByID(ctx, *input.CountryID); err != nil {
			return nil, err
		}
		countryID = *input.CountryID
	}
	merged.CountryID = &countryID

	description := existing.Description
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		if trimmed == "" {
			return nil, domain.ErrEmptyDescription
		}
		description = trimmed
	}
	merged.Description = &description

	price := existing.Price
	if input.Price != nil {
		if *input.Price < domain.MinPrice || *input.Price > domain.MaxPrice {
			return nil, domain.ErrPriceOutOfRange
		}
		price = *input.Price
	}
	merged.Price = &price

	start := existing.StartDate
	if input.StartDate != nil {
		start = truncateToDate(*input.StartDate)
	}
	end := existing.EndDate
	if input.EndDate != nil {
		end = truncateToDate(*input.EndDate)
	}
	if end.Before(start) {
		return nil, domain.ErrEndBeforeStart
	}
	merged.StartDate = &start
	merged.EndDate = &end

	// A blank image name clears the stored image; nil keeps it.
	var imageName string
	if input.ImageName != nil {
		imageName = strings.TrimSpace(*input.ImageName)
	} else if existing.ImageName != nil {
		imageName = *existing.ImageName
	}
	merged.ImageName = &imageName

	rows, err := s.vacations.UpdateByID(ctx, id, merged)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrUpdateFailed
	}

	return s.vacations.GetByID(ctx, id)
}

// Delete removes a vacation. The store cascades the delete to all likes
// referencing it.
func (s *VacationService) Delete(ctx context.Context, id int) error {
	if _, err := s.vacations.GetByID(ctx, id); err != nil {
		return err
	}

	rows, err := s.vacations.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDeleteFailed
	}

	s.logger.Info().Int("vacation_id", id).Msg("vacation deleted")
	return nil
}

// truncateToDate drops the time-of-day component, keeping date precision in UTC.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
