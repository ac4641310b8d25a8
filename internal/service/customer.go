package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

// CustomerService orchestrates customer CRUD and its guards.
type CustomerService struct {
	db           *gorm.DB
	customers    *repository.CustomerRepo
	reservations *repository.ReservationRepo
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{
		db:           db,
		customers:    repository.NewCustomerRepo(db),
		reservations: repository.NewReservationRepo(db),
	}
}

// List returns all customers.
func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.customers.List(ctx)
}

// Get returns one customer by id.
func (s *CustomerService) Get(ctx context.Context, id uint) (*model.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create validates field constraints, enforces email uniqueness and
// inserts the customer.
func (s *CustomerService) Create(ctx context.Context, req model.CustomerCreate) (*model.Customer, error) {
	if err := validate.CustomerCreate(req); err != nil {
		return nil, err
	}
	if req.Email != nil && *req.Email != "" {
		taken, err := s.customers.EmailTaken(ctx, *req.Email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, repository.Conflict("email is already registered")
		}
	}
	c := &model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Age:       req.Age,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies a sparse patch. Empty-string phone or email values are
// treated as absent, matching the create semantics where both are
// optional. Email uniqueness excludes the customer being edited.
func (s *CustomerService) Update(ctx context.Context, id uint, patch model.CustomerPatch) (*model.Customer, error) {
	if err := validate.CustomerPatch(patch); err != nil {
		return nil, err
	}
	cur, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Email != nil && *patch.Email != "" {
		taken, err := s.customers.EmailTaken(ctx, *patch.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, repository.Conflict("email is already registered")
		}
	}
	if patch.FirstName != nil {
		cur.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		cur.LastName = *patch.LastName
	}
	if patch.Phone != nil && *patch.Phone != "" {
		cur.Phone = patch.Phone
	}
	if patch.Email != nil && *patch.Email != "" {
		cur.Email = patch.Email
	}
	if patch.Age != nil {
		cur.Age = *patch.Age
	}
	if err := s.customers.Save(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

// Delete removes a customer unless they hold a reservation that has not
// ended yet (guard-then-block). Check and delete share a transaction.
func (s *CustomerService) Delete(ctx context.Context, id uint) (*model.Customer, error) {
	var deleted *model.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.customers.WithTx(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		busy, err := s.reservations.WithTx(tx).HasFutureByCustomer(ctx, id, time.Now())
		if err != nil {
			return err
		}
		if busy {
			return repository.Conflict("customer has reservations that have not ended yet")
		}
		if err := s.customers.WithTx(tx).Delete(ctx, cur); err != nil {
			return err
		}
		deleted = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
