package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// CustomerRepo provides CRUD operations for customers.
type CustomerRepo struct {
	db *gorm.DB
}

// NewCustomerRepo returns a CustomerRepo bound to the given database.
func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// WithTx returns a copy of the repository bound to the transaction.
func (r *CustomerRepo) WithTx(tx *gorm.DB) *CustomerRepo { return &CustomerRepo{db: tx} }

// List returns all customers. The slice is never nil.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	if err := r.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// GetByID returns a customer or ErrCustomerNotFound.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new customer, populating its generated ID.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Save persists all fields of an existing customer.
func (r *CustomerRepo) Save(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes a customer. Dependent reservations cascade at the
// database level once the service-layer guard has passed.
func (r *CustomerRepo) Delete(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

// EmailTaken reports whether another customer already uses the email.
// Pass excludeID = 0 on create; on update it excludes the customer
// being edited.
func (r *CustomerRepo) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Customer{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
