package service

import (
	"context"
	"fmt"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) AddCustomer(ctx context.Context, name, phone, address string, ctype domain.CustomerType) (*domain.Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if len(phone) < 10 {
		return nil, fmt.Errorf("%w: please enter a valid phone number", ErrValidation)
	}
	if ctype != domain.CustomerTypeOnline && ctype != domain.CustomerTypeOffline {
		return nil, fmt.Errorf("%w: unknown customer type %q", ErrValidation, ctype)
	}

	customer := &domain.Customer{
		Name:          name,
		Phone:         phone,
		Address:       address,
		TotalBookings: 0,
		Type:          ctype,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, update CustomerUpdate) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		customer.Name = *update.Name
	}
	if update.Phone != nil {
		if len(*update.Phone) < 10 {
			return nil, fmt.Errorf("%w: please enter a valid phone number", ErrValidation)
		}
		customer.Phone = *update.Phone
	}
	if update.Address != nil {
		customer.Address = *update.Address
	}
	if update.Type != nil {
		if *update.Type != domain.CustomerTypeOnline && *update.Type != domain.CustomerTypeOffline {
			return nil, fmt.Errorf("%w: unknown customer type %q", ErrValidation, *update.Type)
		}
		customer.Type = *update.Type
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}
