// Package location implements the use cases of the Country → State → City
// hierarchy: CRUD, dependency-guarded deletes and forced deletes.
package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/sistemaempresa/backend/internal/domain/location"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"github.com/sistemaempresa/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// CountryService handles country use cases
type CountryService struct {
	countryRepo location.CountryRepository
}

// NewCountryService creates a new CountryService
func NewCountryService(countryRepo location.CountryRepository) *CountryService {
	return &CountryService{countryRepo: countryRepo}
}

// List returns every country ordered by name
func (s *CountryService) List(ctx context.Context) ([]CountryResponse, error) {
	countries, err := s.countryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toCountryResponses(countries), nil
}

// GetByID retrieves a country by ID
func (s *CountryService) GetByID(ctx context.Context, id int64) (*CountryResponse, error) {
	country, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCountryResponse(country)
	return &response, nil
}

// Create creates a new country
func (s *CountryService) Create(ctx context.Context, req CountryRequest) (*CountryResponse, error) {
	country, err := location.NewCountry(req.Name, req.Abbreviation, req.DialingCode)
	if err != nil {
		return nil, err
	}
	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Country created", zap.Int64("country_id", country.ID), zap.String("name", country.Name))
	response := ToCountryResponse(country)
	return &response, nil
}

// Update replaces the fields of an existing country
func (s *CountryService) Update(ctx context.Context, id int64, req CountryRequest) (*CountryResponse, error) {
	country, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := country.Update(req.Name, req.Abbreviation, req.DialingCode); err != nil {
		return nil, err
	}
	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}

	response := ToCountryResponse(country)
	return &response, nil
}

// Delete removes a country that no state references
func (s *CountryService) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "country", "delete", telemetry.SpanAttrCountryID, id)
	defer span.End()

	if err := s.ensureExists(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	states, err := s.countryRepo.CountStates(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrDependents, states)
	if states > 0 {
		logger.L(ctx).Info("Country delete refused, states still reference it",
			zap.Int64("country_id", id), zap.Int64("states", states))
		return location.ErrCountryHasDependents
	}

	if err := s.countryRepo.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	logger.L(ctx).Info("Country deleted", zap.Int64("country_id", id))
	return nil
}

// ForceDelete detaches every state from the country and deletes it.
// Returns the number of states detached.
func (s *CountryService) ForceDelete(ctx context.Context, id int64) (int64, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "country", "force_delete",
		telemetry.SpanAttrCountryID, id, telemetry.SpanAttrForced, true)
	defer span.End()

	if err := s.ensureExists(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return 0, err
	}

	detached, err := s.countryRepo.ForceDelete(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return 0, notFoundAs(err, countryNotFound(id))
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrDependents, detached)
	logger.L(ctx).Warn("Country force deleted",
		zap.Int64("country_id", id), zap.Int64("states_detached", detached))
	return detached, nil
}

func (s *CountryService) find(ctx context.Context, id int64) (*location.Country, error) {
	country, err := s.countryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, countryNotFound(id))
	}
	return country, nil
}

func (s *CountryService) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.countryRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return countryNotFound(id)
	}
	return nil
}

func countryNotFound(id int64) *shared.DomainError {
	return shared.NewNotFoundError(fmt.Sprintf("País não encontrado com o ID: %d", id))
}

func stateNotFound(id int64) *shared.DomainError {
	return shared.NewNotFoundError(fmt.Sprintf("Estado com ID %d não encontrado", id))
}

func cityNotFound(id int64) *shared.DomainError {
	return shared.NewNotFoundError(fmt.Sprintf("Cidade com ID %d não encontrada.", id))
}

// notFoundAs replaces the repository's generic not-found error with a
// message naming the resource. Other errors pass through untouched.
func notFoundAs(err error, replacement *shared.DomainError) error {
	if errors.Is(err, shared.ErrNotFound) {
		return replacement
	}
	return err
}
