package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roadworthy/pti-system/internal/api/metrics"
	"github.com/roadworthy/pti-system/internal/core/domain"
	"github.com/roadworthy/pti-system/internal/core/ports"
)

// expiryWindowDays is the look-ahead window for ExpiringSoon.
const expiryWindowDays = 30

// InspectionService implements inspection CRUD, ownership-filtered reads
// and the expiry-window query.
type InspectionService struct {
	repo   ports.InspectionRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewInspectionService(repo ports.InspectionRepository, logger zerolog.Logger) *InspectionService {
	return &InspectionService{repo: repo, now: time.Now, logger: logger}
}

func (s *InspectionService) Create(ctx context.Context, user *domain.User, input ports.CreateInspectionInput) (*domain.Inspection, error) {
	if err := domain.RequireRole(user, domain.RoleInspector); err != nil {
		return nil, err
	}

	inspection := &domain.Inspection{
		ID:              uuid.NewString(),
		CarLicensePlate: input.CarLicensePlate,
		OwnerPhone:      input.OwnerPhone,
		InspectionDate:  input.InspectionDate,
		ExpiryDate:      input.ExpiryDate,
		InspectorName:   input.InspectorName,
		InspectorPhone:  input.InspectorPhone,
		CarKilometers:   input.CarKilometers,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, inspection); err != nil {
		s.logger.Error().Err(err).Str("plate", input.CarLicensePlate).Msg("failed to create inspection")
		return nil, err
	}

	metrics.InspectionsCreatedTotal.Inc()
	s.logger.Info().Str("inspection_id", inspection.ID).Str("plate", inspection.CarLicensePlate).Msg("inspection created")
	return inspection, nil
}

// List returns the caller's visible set. A client with no cars gets an
// empty result without touching the store.
func (s *InspectionService) List(ctx context.Context, user *domain.User) ([]*domain.Inspection, error) {
	if user == nil {
		return nil, domain.ErrForbidden
	}
	if user.Role == domain.RoleClient {
		if len(user.Cars) == 0 {
			return []*domain.Inspection{}, nil
		}
		return s.repo.FindByPlates(ctx, user.Cars)
	}
	return s.repo.FindAll(ctx)
}

func (s *InspectionService) Search(ctx context.Context, user *domain.User, plate string) ([]*domain.Inspection, error) {
	if user == nil {
		return nil, domain.ErrForbidden
	}
	if user.Role == domain.RoleClient && !user.HasCar(plate) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByPlates(ctx, []string{plate})
}

func (s *InspectionService) Update(ctx context.Context, user *domain.User, id string, input ports.UpdateInspectionInput) (*domain.Inspection, error) {
	if err := domain.RequireRole(user, domain.RoleInspector); err != nil {
		return nil, err
	}

	inspection, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the fields the caller actually sent are written; everything
	// else keeps its stored value.
	fields := input.Fields()
	if len(fields) > 0 {
		if err := s.repo.SetFields(ctx, id, fields); err != nil {
			return nil, err
		}
		applyFields(inspection, input)
	}

	metrics.InspectionsUpdatedTotal.Inc()
	s.logger.Info().Str("inspection_id", id).Int("fields", len(fields)).Msg("inspection updated")
	return inspection, nil
}

func (s *InspectionService) Delete(ctx context.Context, user *domain.User, id string) error {
	if err := domain.RequireRole(user, domain.RoleInspector); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.InspectionsDeletedTotal.Inc()
	s.logger.Info().Str("inspection_id", id).Msg("inspection deleted")
	return nil
}

// ExpiringSoon narrows the caller's visible set to records expiring within
// the next 30 days. Records whose expiry date does not parse are excluded
// rather than surfaced as an error; they are counted so bad data stays
// observable.
func (s *InspectionService) ExpiringSoon(ctx context.Context, user *domain.User) ([]*domain.Inspection, error) {
	visible, err := s.List(ctx, user)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	expiring := make([]*domain.Inspection, 0)
	for _, inspection := range visible {
		within, ok := inspection.ExpiresWithin(now, expiryWindowDays)
		if !ok {
			metrics.MalformedExpiryDatesTotal.Inc()
			s.logger.Debug().Str("inspection_id", inspection.ID).Str("expiry_date", inspection.ExpiryDate).Msg("skipping record with malformed expiry date")
			continue
		}
		if within {
			expiring = append(expiring, inspection)
		}
	}
	return expiring, nil
}

func applyFields(inspection *domain.Inspection, input ports.UpdateInspectionInput) {
	if input.CarLicensePlate != nil {
		inspection.CarLicensePlate = *input.CarLicensePlate
	}
	if input.OwnerPhone != nil {
		inspection.OwnerPhone = *input.OwnerPhone
	}
	if input.InspectionDate != nil {
		inspection.InspectionDate = *input.InspectionDate
	}
	if input.ExpiryDate != nil {
		inspection.ExpiryDate = *input.ExpiryDate
	}
	if input.InspectorName != nil {
		inspection.InspectorName = *input.InspectorName
	}
	if input.InspectorPhone != nil {
		inspection.InspectorPhone = *input.InspectorPhone
	}
	if input.CarKilometers != nil {
		inspection.CarKilometers = *input.CarKilometers
	}
}
