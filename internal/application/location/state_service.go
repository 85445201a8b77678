package location

import (
	"context"

	"github.com/sistemaempresa/backend/internal/domain/location"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"github.com/sistemaempresa/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// StateService handles state use cases
type StateService struct {
	stateRepo   location.StateRepository
	countryRepo location.CountryRepository
}

// NewStateService creates a new StateService
func NewStateService(stateRepo location.StateRepository, countryRepo location.CountryRepository) *StateService {
	return &StateService{
		stateRepo:   stateRepo,
		countryRepo: countryRepo,
	}
}

// List returns states ordered by name, restricted to countryID when it is set
func (s *StateService) List(ctx context.Context, countryID *int64) ([]StateResponse, error) {
	states, err := s.stateRepo.FindAll(ctx, countryID)
	if err != nil {
		return nil, err
	}
	return toStateResponses(states), nil
}

// ListDetailed returns every state with its country name, including states
// left without a country by a forced delete
func (s *StateService) ListDetailed(ctx context.Context) ([]StateResponse, error) {
	return s.List(ctx, nil)
}

// ListByCountry returns the states of an existing country
func (s *StateService) ListByCountry(ctx context.Context, countryID int64) ([]StateResponse, error) {
	exists, err := s.countryRepo.ExistsByID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, countryNotFound(countryID)
	}
	return s.List(ctx, &countryID)
}

// GetByID retrieves a state by ID with its country name
func (s *StateService) GetByID(ctx context.Context, id int64) (*StateResponse, error) {
	state, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToStateResponse(state)
	return &response, nil
}

// Create creates a new state under an existing country
func (s *StateService) Create(ctx context.Context, req StateRequest) (*StateResponse, error) {
	state, err := location.NewState(req.Name, req.UF, req.CountryID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCountry(ctx, req.CountryID); err != nil {
		return nil, err
	}
	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("State created", zap.Int64("state_id", state.ID), zap.Int64("country_id", req.CountryID))
	return s.GetByID(ctx, state.ID)
}

// Update replaces the fields of an existing state
func (s *StateService) Update(ctx context.Context, id int64, req StateRequest) (*StateResponse, error) {
	state, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := state.Update(req.Name, req.UF, req.CountryID); err != nil {
		return nil, err
	}
	if err := s.ensureCountry(ctx, req.CountryID); err != nil {
		return nil, err
	}
	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a state that no city references
func (s *StateService) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "state", "delete", telemetry.SpanAttrStateID, id)
	defer span.End()

	if err := s.ensureExists(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	cities, err := s.stateRepo.CountCities(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrDependents, cities)
	if cities > 0 {
		logger.L(ctx).Info("State delete refused, cities still reference it",
			zap.Int64("state_id", id), zap.Int64("cities", cities))
		return location.ErrStateHasDependents
	}

	if err := s.stateRepo.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	logger.L(ctx).Info("State deleted", zap.Int64("state_id", id))
	return nil
}

// ForceDelete detaches every city from the state and deletes it.
// Returns the number of cities detached.
func (s *StateService) ForceDelete(ctx context.Context, id int64) (int64, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "state", "force_delete",
		telemetry.SpanAttrStateID, id, telemetry.SpanAttrForced, true)
	defer span.End()

	if err := s.ensureExists(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return 0, err
	}

	detached, err := s.stateRepo.ForceDelete(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return 0, notFoundAs(err, stateNotFound(id))
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrDependents, detached)
	logger.L(ctx).Warn("State force deleted",
		zap.Int64("state_id", id), zap.Int64("cities_detached", detached))
	return detached, nil
}

func (s *StateService) find(ctx context.Context, id int64) (*location.State, error) {
	state, err := s.stateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, stateNotFound(id))
	}
	return state, nil
}

func (s *StateService) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.stateRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return stateNotFound(id)
	}
	return nil
}

func (s *StateService) ensureCountry(ctx context.Context, countryID int64) error {
	exists, err := s.countryRepo.ExistsByID(ctx, countryID)
	if err != nil {
		return err
	}
	if !exists {
		return location.ErrCountryNotFound(countryID)
	}
	return nil
}
