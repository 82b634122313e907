package ports

import (
	"context"

	"github.com/roadworthy/pti-system/internal/core/domain"
)

// MaxListResults caps every multi-document query. There is no pagination;
// the API contract is a fixed maximum result count.
const MaxListResults = 1000

// InspectionRepository defines persistence operations for inspections.
type InspectionRepository interface {
	Insert(ctx context.Context, inspection *domain.Inspection) error
	FindByID(ctx context.Context, id string) (*domain.Inspection, error)
	// FindAll returns every inspection in store order, capped at MaxListResults.
	FindAll(ctx context.Context) ([]*domain.Inspection, error)
	// FindByPlates returns inspections whose plate is in plates, capped at
	// MaxListResults.
	FindByPlates(ctx context.Context, plates []string) ([]*domain.Inspection, error)
	// SetFields applies a partial update: only the given fields change.
	SetFields(ctx context.Context, id string, fields map[string]any) error
	// Delete removes the inspection permanently. Returns
	// domain.ErrInspectionNotFound when no document matched.
	Delete(ctx context.Context, id string) error
}
