package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/sistemaempresa/backend/internal/domain/location"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/sistemaempresa/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStateRepository implements StateRepository using GORM
type GormStateRepository struct {
	db *gorm.DB
}

// NewGormStateRepository creates a new GormStateRepository
func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// FindByID finds a state by its ID along with its country
func (r *GormStateRepository) FindByID(ctx context.Context, id int64) (*location.State, error) {
	var model models.StateModel
	if err := r.db.WithContext(ctx).Preload("Country").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns states ordered by name, optionally restricted to one country.
// States detached from their country by a forced delete are included with an empty country name.
func (r *GormStateRepository) FindAll(ctx context.Context, countryID *int64) ([]location.State, error) {
	query := r.db.WithContext(ctx).Preload("Country")
	if countryID != nil {
		query = query.Where("pais_id = ?", *countryID)
	}

	var records []models.StateModel
	if err := query.Order("nome ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	states := make([]location.State, len(records))
	for i := range records {
		states[i] = *records[i].ToDomain()
	}
	return states, nil
}

// Save creates or updates a state. The Country association is never written.
func (r *GormStateRepository) Save(ctx context.Context, state *location.State) error {
	model := models.StateModelFromDomain(state)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(model).Error; err != nil {
		return err
	}
	state.ID = model.ID
	return nil
}

// Delete deletes a state by its ID
func (r *GormStateRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.StateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByID checks if a state exists
func (r *GormStateRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StateModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountCities counts the cities referencing the state
func (r *GormStateRepository) CountCities(ctx context.Context, id int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CityModel{}).Where("estado_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ForceDelete detaches the state's cities and deletes the state atomically
func (r *GormStateRepository) ForceDelete(ctx context.Context, id int64) (int64, error) {
	var detached int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.CityModel{}).Where("estado_id = ?", id).Update("estado_id", nil)
		if result.Error != nil {
			return fmt.Errorf("failed to detach cities: %w", result.Error)
		}
		detached = result.RowsAffected

		result = tx.Delete(&models.StateModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete state: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return detached, nil
}

// Ensure GormStateRepository implements StateRepository
var _ location.StateRepository = (*GormStateRepository)(nil)
