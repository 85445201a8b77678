package location

import (
	"context"

	"github.com/sistemaempresa/backend/internal/domain/location"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"github.com/sistemaempresa/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// CityService handles city use cases, including the guard that keeps
// clients, suppliers, employees and transporters from losing their city.
type CityService struct {
	cityRepo  location.CityRepository
	stateRepo location.StateRepository
}

// NewCityService creates a new CityService
func NewCityService(cityRepo location.CityRepository, stateRepo location.StateRepository) *CityService {
	return &CityService{
		cityRepo:  cityRepo,
		stateRepo: stateRepo,
	}
}

// List returns cities ordered by name, restricted to stateID when it is set
func (s *CityService) List(ctx context.Context, stateID *int64) ([]CityResponse, error) {
	cities, err := s.cityRepo.FindAll(ctx, stateID)
	if err != nil {
		return nil, err
	}
	return toCityResponses(cities), nil
}

// ListByState returns the cities of a state. An unknown state yields an empty list.
func (s *CityService) ListByState(ctx context.Context, stateID int64) ([]CityResponse, error) {
	cities, err := s.List(ctx, &stateID)
	if err != nil {
		return nil, err
	}
	logger.L(ctx).Debug("Cities listed by state",
		zap.Int64("state_id", stateID), zap.Int("count", len(cities)))
	return cities, nil
}

// GetByID retrieves a city by ID with its state and country names
func (s *CityService) GetByID(ctx context.Context, id int64) (*CityResponse, error) {
	city, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCityResponse(city)
	return &response, nil
}

// Create creates a new city under an existing state
func (s *CityService) Create(ctx context.Context, req CityRequest) (*CityResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "city", "create", telemetry.SpanAttrStateID, req.StateID)
	defer span.End()

	if err := s.ensureState(ctx, req.StateID); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	city, err := location.NewCity(req.Name, req.IBGECode, req.StateID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.cityRepo.Save(ctx, city); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrCityID, city.ID)
	logger.L(ctx).Info("City created", zap.Int64("city_id", city.ID), zap.Int64("state_id", req.StateID))
	return s.GetByID(ctx, city.ID)
}

// Update replaces the fields of an existing city
func (s *CityService) Update(ctx context.Context, id int64, req CityRequest) (*CityResponse, error) {
	city, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureState(ctx, req.StateID); err != nil {
		return nil, err
	}
	if err := city.Update(req.Name, req.IBGECode, req.StateID); err != nil {
		return nil, err
	}
	if err := s.cityRepo.Save(ctx, city); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Dependents returns how many records of each kind reference the city
func (s *CityService) Dependents(ctx context.Context, id int64) (*CityDependentsResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "city", "dependents", telemetry.SpanAttrCityID, id)
	defer span.End()

	if err := s.ensureExists(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	deps, err := s.cityRepo.CountDependents(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrDependents, deps.Total())
	return &CityDependentsResponse{CityID: id, Dependents: deps, Total: deps.Total()}, nil
}

// Delete removes a city that no client, supplier, employee or transporter references
func (s *CityService) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "city", "delete", telemetry.SpanAttrCityID, id)
	defer span.End()

	if err := s.ensureExists(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	deps, err := s.cityRepo.CountDependents(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrDependents, deps.Total())
	if deps.Any() {
		logger.L(ctx).Info("City delete refused, records still reference it",
			zap.Int64("city_id", id),
			zap.Int64("clients", deps.Clients),
			zap.Int64("suppliers", deps.Suppliers),
			zap.Int64("employees", deps.Employees),
			zap.Int64("transporters", deps.Transporters),
		)
		return location.ErrCityHasDependents
	}

	if err := s.cityRepo.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	logger.L(ctx).Info("City deleted", zap.Int64("city_id", id))
	return nil
}

// ForceDelete clears the city from every record that references it and
// deletes the city. Returns how many records were detached per kind.
func (s *CityService) ForceDelete(ctx context.Context, id int64) (location.Dependents, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "city", "force_delete",
		telemetry.SpanAttrCityID, id, telemetry.SpanAttrForced, true)
	defer span.End()

	if err := s.ensureExists(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return location.Dependents{}, err
	}

	detached, err := s.cityRepo.ForceDelete(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return location.Dependents{}, notFoundAs(err, cityNotFound(id))
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrDependents, detached.Total())
	logger.L(ctx).Warn("City force deleted",
		zap.Int64("city_id", id), zap.Int64("records_detached", detached.Total()))
	return detached, nil
}

func (s *CityService) find(ctx context.Context, id int64) (*location.City, error) {
	city, err := s.cityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, cityNotFound(id))
	}
	return city, nil
}

func (s *CityService) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.cityRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return cityNotFound(id)
	}
	return nil
}

func (s *CityService) ensureState(ctx context.Context, stateID int64) error {
	if stateID <= 0 {
		return location.ErrStateNotFound(stateID)
	}
	exists, err := s.stateRepo.ExistsByID(ctx, stateID)
	if err != nil {
		return err
	}
	if !exists {
		return location.ErrStateNotFound(stateID)
	}
	return nil
}
