package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

// ExtrasService orchestrates CRUD for additional services charged to a
// reservation.
type ExtrasService struct {
	db           *gorm.DB
	services     *repository.ServiceRepo
	reservations *repository.ReservationRepo
}

// NewExtrasService constructs an ExtrasService.
func NewExtrasService(db *gorm.DB) *ExtrasService {
	return &ExtrasService{
		db:           db,
		services:     repository.NewServiceRepo(db),
		reservations: repository.NewReservationRepo(db),
	}
}

// List returns all additional services.
func (s *ExtrasService) List(ctx context.Context) ([]model.AdditionalService, error) {
	return s.services.List(ctx)
}

// Get returns one service by id.
func (s *ExtrasService) Get(ctx context.Context, id uint) (*model.AdditionalService, error) {
	return s.services.GetByID(ctx, id)
}

// Create validates field constraints, confirms the parent reservation
// exists and enforces description uniqueness within it.
func (s *ExtrasService) Create(ctx context.Context, req model.AdditionalServiceCreate) (*model.AdditionalService, error) {
	if err := validate.ServiceFields(req.Description, req.Cost); err != nil {
		return nil, err
	}
	if _, err := s.reservations.GetByID(ctx, req.ReservationID); err != nil {
		return nil, err
	}
	taken, err := s.services.DescriptionTaken(ctx, req.ReservationID, req.Description, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.Conflict("a service with this description already exists for the reservation")
	}
	svc := &model.AdditionalService{
		Description:   req.Description,
		Cost:          req.Cost,
		ReservationID: req.ReservationID,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Update applies a sparse patch. When the service moves to another
// reservation, the description uniqueness check is re-scoped to the new
// reservation; in every case it excludes the service being edited.
func (s *ExtrasService) Update(ctx context.Context, id uint, patch model.AdditionalServicePatch) (*model.AdditionalService, error) {
	if err := validate.ServicePatch(patch); err != nil {
		return nil, err
	}
	cur, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	targetReservation := cur.ReservationID
	if patch.ReservationID != nil {
		if _, err := s.reservations.GetByID(ctx, *patch.ReservationID); err != nil {
			return nil, err
		}
		targetReservation = *patch.ReservationID
	}
	description := cur.Description
	if patch.Description != nil {
		description = *patch.Description
	}
	if patch.Description != nil || patch.ReservationID != nil {
		taken, err := s.services.DescriptionTaken(ctx, targetReservation, description, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, repository.Conflict("a service with this description already exists for the reservation")
		}
	}
	cur.ReservationID = targetReservation
	cur.Description = description
	if patch.Cost != nil {
		cur.Cost = *patch.Cost
	}
	if err := s.services.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

// Delete removes a service unconditionally.
func (s *ExtrasService) Delete(ctx context.Context, id uint) (*model.AdditionalService, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.services.Delete(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}
