// Package partner implements the use cases of clients, suppliers, employees
// and transporters. Every save checks that the referenced city exists.
package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/sistemaempresa/backend/internal/domain/shared"
)

// CityLookup is the subset of the city repository the partner services need
type CityLookup interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// documentChecker is satisfied by every partner repository
type documentChecker interface {
	ExistsByDocument(ctx context.Context, document string, excludeID int64) (bool, error)
}

// ensureCity fails with a validation error when cityID references no city
func ensureCity(ctx context.Context, cities CityLookup, cityID *int64) error {
	if cityID == nil {
		return nil
	}
	exists, err := cities.ExistsByID(ctx, *cityID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewValidationError(fmt.Sprintf("Cidade não encontrada com o ID: %d", *cityID))
	}
	return nil
}

// ensureUniqueDocuments fails when another record already holds one of the documents
func ensureUniqueDocuments(ctx context.Context, repo documentChecker, excludeID int64, documents ...string) error {
	for _, document := range documents {
		if document == "" {
			continue
		}
		exists, err := repo.ExistsByDocument(ctx, document, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError(shared.CodeAlreadyExists, fmt.Sprintf("Já existe um cadastro com o documento %s", document))
		}
	}
	return nil
}

// notFoundAs replaces the repository's generic not-found error with a
// message naming the resource
func notFoundAs(err error, message string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewNotFoundError(message)
	}
	return err
}
