package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/logger"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/utils"
)

type checkoutService struct {
	cart          CartService
	bookingRepo   repository.BookingRepository
	generatorRepo repository.GeneratorRepository
	customerRepo  repository.CustomerRepository
	otp           OTPProvider
}

func NewCheckoutService(
	cart CartService,
	bookingRepo repository.BookingRepository,
	generatorRepo repository.GeneratorRepository,
	customerRepo repository.CustomerRepository,
	otp OTPProvider,
) CheckoutService {
	return &checkoutService{
		cart:          cart,
		bookingRepo:   bookingRepo,
		generatorRepo: generatorRepo,
		customerRepo:  customerRepo,
		otp:           otp,
	}
}

func (s *checkoutService) RequestOTP(ctx context.Context, phone string) (string, error) {
	if len(phone) < 10 {
		return "", fmt.Errorf("%w: please enter a valid phone number", ErrValidation)
	}
	return s.otp.SendOTP(ctx, phone)
}

func (s *checkoutService) Checkout(ctx context.Context, input CheckoutInput) (*domain.Booking, error) {
	if err := s.otp.ValidateOTP(ctx, input.OTPToken, input.OTPCode); err != nil {
		return nil, err
	}

	lines := s.cart.Items(ctx, input.SessionID)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	customer, err := s.resolveCustomer(ctx, input)
	if err != nil {
		return nil, err
	}

	// One booking for the whole cart: first-N available units per line,
	// model ids and names joined the way the storefront displays them.
	var (
		bookedUnits []domain.BookedUnit
		modelIDs    []string
		modelNames  []string
		totalCost   int32
	)
	for _, line := range lines {
		gen, err := s.generatorRepo.GetByID(ctx, line.GeneratorID)
		if err != nil {
			return nil, err
		}
		if line.Quantity > gen.AvailableUnits() {
			return nil, fmt.Errorf("%w: only %d units of %s available", ErrOutOfStock, gen.AvailableUnits(), gen.Name)
		}

		cost, err := utils.RentalCost(gen.PricePerDay, line.Quantity, input.StartDate, input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		totalCost += cost

		bookedUnits = append(bookedUnits, selectAvailableUnits(gen, line.Quantity)...)
		modelIDs = append(modelIDs, gen.ID)
		modelNames = append(modelNames, fmt.Sprintf("%s (x%d)", gen.Name, line.Quantity))
	}

	booking := &domain.Booking{
		CustomerName:  customer.Name,
		GeneratorID:   strings.Join(modelIDs, ", "),
		GeneratorName: strings.Join(modelNames, ", "),
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Source:        domain.BookingSourceOnline,
		BookedUnits:   bookedUnits,
		TotalCost:     totalCost,
	}

	if err := s.bookingRepo.Create(ctx, booking, customer.ID); err != nil {
		return nil, err
	}

	s.cart.Clear(ctx, input.SessionID)
	logger.Info("Online booking created", "booking_id", booking.ID, "customer_id", customer.ID, "total_cost", totalCost, "units", len(bookedUnits))
	return booking, nil
}

// resolveCustomer upserts the checkout identity keyed on exact phone
// match: an existing number reuses the customer record, a new number
// creates an Online customer with a zeroed booking counter.
func (s *checkoutService) resolveCustomer(ctx context.Context, input CheckoutInput) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, input.Phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	customer = &domain.Customer{
		Name:          input.Name,
		Phone:         input.Phone,
		Address:       input.Address,
		TotalBookings: 0,
		Type:          domain.CustomerTypeOnline,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
