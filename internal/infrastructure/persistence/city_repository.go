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

// cityDependentTables lists every table holding a cidade_id reference
var cityDependentTables = []struct {
	model any
	count func(d *location.Dependents) *int64
}{
	{&models.ClientModel{}, func(d *location.Dependents) *int64 { return &d.Clients }},
	{&models.SupplierModel{}, func(d *location.Dependents) *int64 { return &d.Suppliers }},
	{&models.EmployeeModel{}, func(d *location.Dependents) *int64 { return &d.Employees }},
	{&models.TransporterModel{}, func(d *location.Dependents) *int64 { return &d.Transporters }},
}

// GormCityRepository implements CityRepository using GORM
type GormCityRepository struct {
	db *gorm.DB
}

// NewGormCityRepository creates a new GormCityRepository
func NewGormCityRepository(db *gorm.DB) *GormCityRepository {
	return &GormCityRepository{db: db}
}

// FindByID finds a city by its ID along with its state and country
func (r *GormCityRepository) FindByID(ctx context.Context, id int64) (*location.City, error) {
	var model models.CityModel
	if err := r.db.WithContext(ctx).Preload("State.Country").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns cities ordered by name, optionally restricted to one state
func (r *GormCityRepository) FindAll(ctx context.Context, stateID *int64) ([]location.City, error) {
	query := r.db.WithContext(ctx).Preload("State.Country")
	if stateID != nil {
		query = query.Where("estado_id = ?", *stateID)
	}

	var records []models.CityModel
	if err := query.Order("nome ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	cities := make([]location.City, len(records))
	for i := range records {
		cities[i] = *records[i].ToDomain()
	}
	return cities, nil
}

// Save creates or updates a city. The State association is never written.
func (r *GormCityRepository) Save(ctx context.Context, city *location.City) error {
	model := models.CityModelFromDomain(city)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(model).Error; err != nil {
		return err
	}
	city.ID = model.ID
	return nil
}

// Delete deletes a city by its ID
func (r *GormCityRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.CityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByID checks if a city exists
func (r *GormCityRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CityModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountDependents counts, per table, the rows referencing the city
func (r *GormCityRepository) CountDependents(ctx context.Context, id int64) (location.Dependents, error) {
	var deps location.Dependents
	db := r.db.WithContext(ctx)
	for _, table := range cityDependentTables {
		if err := db.Model(table.model).Where("cidade_id = ?", id).Count(table.count(&deps)).Error; err != nil {
			return location.Dependents{}, fmt.Errorf("failed to count city dependents: %w", err)
		}
	}
	return deps, nil
}

// ForceDelete clears cidade_id on every dependent table and deletes the city atomically.
// Returns how many rows were detached per table.
func (r *GormCityRepository) ForceDelete(ctx context.Context, id int64) (location.Dependents, error) {
	var detached location.Dependents
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range cityDependentTables {
			result := tx.Model(table.model).Where("cidade_id = ?", id).Update("cidade_id", nil)
			if result.Error != nil {
				return fmt.Errorf("failed to detach city dependents: %w", result.Error)
			}
			*table.count(&detached) = result.RowsAffected
		}

		result := tx.Delete(&models.CityModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete city: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return location.Dependents{}, err
	}
	return detached, nil
}

// Ensure GormCityRepository implements CityRepository
var _ location.CityRepository = (*GormCityRepository)(nil)
