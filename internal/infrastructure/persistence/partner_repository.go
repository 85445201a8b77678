package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/domain/shared"
	"github.com/sistemaempresa/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// partnerRecord is a persistence model that maps to the domain entity T
type partnerRecord[T any, M any] interface {
	*M
	ToDomain() *T
	FromDomain(*T)
}

// partnerTable describes the columns a partner table is searched, ordered and
// deduplicated by
type partnerTable struct {
	name            string
	searchColumns   []string
	documentColumns []string
	sortFields      map[string]bool
	defaultSort     string
}

// gormPartnerStore implements partner.Repository[T] on top of the model M
type gormPartnerStore[T any, M any, PM partnerRecord[T, M]] struct {
	db    *gorm.DB
	table partnerTable
}

// FindByID finds a record by its ID, active or not, along with its city
func (s *gormPartnerStore[T, M, PM]) FindByID(ctx context.Context, id int64) (*T, error) {
	model := PM(new(M))
	if err := s.db.WithContext(ctx).Preload("City").First(model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns the records matching the filter. Inactive records are
// skipped unless filter.IncludeInactive is set.
func (s *gormPartnerStore[T, M, PM]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	var records []M
	query := s.applyFilter(s.db.WithContext(ctx).Model(PM(new(M))).Preload("City"), filter)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	entities := make([]T, len(records))
	for i := range records {
		entities[i] = *PM(&records[i]).ToDomain()
	}
	return entities, nil
}

// Save creates or updates a record. The entity is refreshed with the stored
// values, including the generated ID.
func (s *gormPartnerStore[T, M, PM]) Save(ctx context.Context, entity *T) error {
	model := PM(new(M))
	model.FromDomain(entity)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(model).Error; err != nil {
		return err
	}
	*entity = *model.ToDomain()
	return nil
}

// Deactivate soft-deletes a record
func (s *gormPartnerStore[T, M, PM]) Deactivate(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Model(PM(new(M))).Where("id = ?", id).Update("ativo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByDocument checks if a record other than excludeID holds the document
func (s *gormPartnerStore[T, M, PM]) ExistsByDocument(ctx context.Context, document string, excludeID int64) (bool, error) {
	if document == "" {
		return false, nil
	}

	conditions := make([]string, len(s.table.documentColumns))
	args := make([]any, len(s.table.documentColumns))
	for i, column := range s.table.documentColumns {
		conditions[i] = column + " = ?"
		args[i] = document
	}

	where := "(" + strings.Join(conditions, " OR ") + ")"
	query := s.db.WithContext(ctx).Model(PM(new(M))).Where(where, args...)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormPartnerStore[T, M, PM]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if !filter.IncludeInactive {
		query = query.Where(s.table.name+".ativo = ?", true)
	}

	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		pattern := "%" + search + "%"
		conditions := make([]string, len(s.table.searchColumns))
		args := make([]any, len(s.table.searchColumns))
		for i, column := range s.table.searchColumns {
			conditions[i] = "LOWER(" + s.table.name + "." + column + ") LIKE ?"
			args[i] = pattern
		}
		where := "(" + strings.Join(conditions, " OR ") + ")"
		query = query.Where(where, args...)
	}

	return query.Order(orderClause(s.table.name, filter, s.table.sortFields, s.table.defaultSort))
}

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	gormPartnerStore[partner.Client, models.ClientModel, *models.ClientModel]
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{gormPartnerStore[partner.Client, models.ClientModel, *models.ClientModel]{
		db: db,
		table: partnerTable{
			name:            "cliente",
			searchColumns:   []string{"nome", "cpf", "cnpj", "email"},
			documentColumns: []string{"cpf", "cnpj"},
			sortFields:      ClientSortFields,
			defaultSort:     "nome",
		},
	}}
}

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	gormPartnerStore[partner.Supplier, models.SupplierModel, *models.SupplierModel]
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{gormPartnerStore[partner.Supplier, models.SupplierModel, *models.SupplierModel]{
		db: db,
		table: partnerTable{
			name:            "fornecedores",
			searchColumns:   []string{"razao_social", "nome_fantasia", "cnpj", "email"},
			documentColumns: []string{"cnpj"},
			sortFields:      CompanySortFields,
			defaultSort:     "razao_social",
		},
	}}
}

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	gormPartnerStore[partner.Employee, models.EmployeeModel, *models.EmployeeModel]
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{gormPartnerStore[partner.Employee, models.EmployeeModel, *models.EmployeeModel]{
		db: db,
		table: partnerTable{
			name:            "funcionario",
			searchColumns:   []string{"nome", "cpf", "cargo", "email"},
			documentColumns: []string{"cpf"},
			sortFields:      EmployeeSortFields,
			defaultSort:     "nome",
		},
	}}
}

// GormTransporterRepository implements TransporterRepository using GORM
type GormTransporterRepository struct {
	gormPartnerStore[partner.Transporter, models.TransporterModel, *models.TransporterModel]
}

// NewGormTransporterRepository creates a new GormTransporterRepository
func NewGormTransporterRepository(db *gorm.DB) *GormTransporterRepository {
	return &GormTransporterRepository{gormPartnerStore[partner.Transporter, models.TransporterModel, *models.TransporterModel]{
		db: db,
		table: partnerTable{
			name:            "transportadora",
			searchColumns:   []string{"razao_social", "nome_fantasia", "cnpj", "email"},
			documentColumns: []string{"cnpj"},
			sortFields:      CompanySortFields,
			defaultSort:     "razao_social",
		},
	}}
}

// Ensure the GORM repositories implement the partner repository interfaces
var (
	_ partner.ClientRepository      = (*GormClientRepository)(nil)
	_ partner.SupplierRepository    = (*GormSupplierRepository)(nil)
	_ partner.EmployeeRepository    = (*GormEmployeeRepository)(nil)
	_ partner.TransporterRepository = (*GormTransporterRepository)(nil)
)
