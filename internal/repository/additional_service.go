package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ServiceRepo provides CRUD operations for additional services.
type ServiceRepo struct {
	db *gorm.DB
}

// NewServiceRepo returns a ServiceRepo bound to the given database.
func NewServiceRepo(db *gorm.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// WithTx returns a copy of the repository bound to the transaction.
func (r *ServiceRepo) WithTx(tx *gorm.DB) *ServiceRepo { return &ServiceRepo{db: tx} }

// List returns all additional services. The slice is never nil.
func (r *ServiceRepo) List(ctx context.Context) ([]model.AdditionalService, error) {
	services := make([]model.AdditionalService, 0)
	if err := r.db.WithContext(ctx).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID returns a service or ErrServiceNotFound.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint) (*model.AdditionalService, error) {
	var s model.AdditionalService
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new service, populating its generated ID.
func (r *ServiceRepo) Create(ctx context.Context, s *model.AdditionalService) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Save persists all fields of an existing service.
func (r *ServiceRepo) Save(ctx context.Context, s *model.AdditionalService) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete removes a service.
func (r *ServiceRepo) Delete(ctx context.Context, s *model.AdditionalService) error {
	return r.db.WithContext(ctx).Delete(s).Error
}

// DescriptionTaken reports whether another service under the same
// reservation already uses the description. Pass excludeID = 0 on
// create; on update it excludes the service being edited, and
// reservationID is the one the service will belong to after the update.
func (r *ServiceRepo) DescriptionTaken(ctx context.Context, reservationID uint, description string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.AdditionalService{}).
		Where("reservation_id = ? AND description = ?", reservationID, description)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
