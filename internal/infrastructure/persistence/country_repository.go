package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/sistemaempresa/backend/internal/domain/location"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/sistemaempresa/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCountryRepository implements CountryRepository using GORM
type GormCountryRepository struct {
	db *gorm.DB
}

// NewGormCountryRepository creates a new GormCountryRepository
func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

// FindByID finds a country by its ID
func (r *GormCountryRepository) FindByID(ctx context.Context, id int64) (*location.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every country ordered by name
func (r *GormCountryRepository) FindAll(ctx context.Context) ([]location.Country, error) {
	var records []models.CountryModel
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	countries := make([]location.Country, len(records))
	for i := range records {
		countries[i] = *records[i].ToDomain()
	}
	return countries, nil
}

// Save creates or updates a country
func (r *GormCountryRepository) Save(ctx context.Context, country *location.Country) error {
	model := models.CountryModelFromDomain(country)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	country.ID = model.ID
	return nil
}

// Delete deletes a country by its ID
func (r *GormCountryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.CountryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByID checks if a country exists
func (r *GormCountryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CountryModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountStates counts the states referencing the country
func (r *GormCountryRepository) CountStates(ctx context.Context, id int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StateModel{}).Where("pais_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ForceDelete detaches the country's states and deletes the country atomically
func (r *GormCountryRepository) ForceDelete(ctx context.Context, id int64) (int64, error) {
	var detached int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.StateModel{}).Where("pais_id = ?", id).Update("pais_id", nil)
		if result.Error != nil {
			return fmt.Errorf("failed to detach states: %w", result.Error)
		}
		detached = result.RowsAffected

		result = tx.Delete(&models.CountryModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete country: %w", result.Error)
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

// Ensure GormCountryRepository implements CountryRepository
var _ location.CountryRepository = (*GormCountryRepository)(nil)
