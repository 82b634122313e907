package ports

import (
	"context"

	"github.com/roadworthy/pti-system/internal/core/domain"
)

// CreateInspectionInput carries all data needed to record an inspection.
type CreateInspectionInput struct {
	CarLicensePlate string
	OwnerPhone      string
	InspectionDate  string
	ExpiryDate      string
	InspectorName   string
	InspectorPhone  string
	CarKilometers   int
}

// UpdateInspectionInput is a partial update: nil fields were not supplied
// by the caller and must be left untouched.
type UpdateInspectionInput struct {
	CarLicensePlate *string
	OwnerPhone      *string
	InspectionDate  *string
	ExpiryDate      *string
	InspectorName   *string
	InspectorPhone  *string
	CarKilometers   *int
}

// Fields returns only the explicitly supplied fields, keyed by their
// stored field name.
func (u UpdateInspectionInput) Fields() map[string]any {
	fields := make(map[string]any)
	if u.CarLicensePlate != nil {
		fields["car_license_plate"] = *u.CarLicensePlate
	}
	if u.OwnerPhone != nil {
		fields["owner_phone"] = *u.OwnerPhone
	}
	if u.InspectionDate != nil {
		fields["inspection_date"] = *u.InspectionDate
	}
	if u.ExpiryDate != nil {
		fields["expiry_date"] = *u.ExpiryDate
	}
	if u.InspectorName != nil {
		fields["inspector_name"] = *u.InspectorName
	}
	if u.InspectorPhone != nil {
		fields["inspector_phone"] = *u.InspectorPhone
	}
	if u.CarKilometers != nil {
		fields["car_kilometers"] = *u.CarKilometers
	}
	return fields
}

// InspectionService defines use-case operations for inspection records.
// Every operation receives the already-resolved caller so role and
// ownership rules are enforced at this layer.
type InspectionService interface {
	Create(ctx context.Context, user *domain.User, input CreateInspectionInput) (*domain.Inspection, error)
	// List returns the caller's visible set: all inspections for an
	// inspector, only those matching the client's cars otherwise.
	List(ctx context.Context, user *domain.User) ([]*domain.Inspection, error)
	// Search returns every inspection for the given plate. Clients may
	// only search plates from their own car list.
	Search(ctx context.Context, user *domain.User, plate string) ([]*domain.Inspection, error)
	Update(ctx context.Context, user *domain.User, id string, input UpdateInspectionInput) (*domain.Inspection, error)
	Delete(ctx context.Context, user *domain.User, id string) error
	// ExpiringSoon filters the caller's visible set down to records whose
	// expiry date falls within the next 30 days (inclusive).
	ExpiringSoon(ctx context.Context, user *domain.User) ([]*domain.Inspection, error)
}
