package partner

import (
	"context"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// Repository is the persistence contract shared by every partner type
type Repository[T any] interface {
	// FindByID finds a record by its ID, active or not
	FindByID(ctx context.Context, id int64) (*T, error)

	// FindAll returns records ordered by name, honouring filter.Search and filter.IncludeInactive
	FindAll(ctx context.Context, filter shared.Filter) ([]T, error)

	// Save creates the record when it is new, otherwise updates it
	Save(ctx context.Context, entity *T) error

	// Deactivate soft-deletes a record by clearing its active flag
	Deactivate(ctx context.Context, id int64) error

	// ExistsByDocument checks whether another record (id != excludeID) holds the document
	ExistsByDocument(ctx context.Context, document string, excludeID int64) (bool, error)
}

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	Repository[Client]
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	Repository[Supplier]
}

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	Repository[Employee]
}

// TransporterRepository defines the interface for transporter persistence
type TransporterRepository interface {
	Repository[Transporter]
}
