package service

import (
	"context"
	"fmt"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/logger"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/utils"
)

type bookingService struct {
	bookingRepo   repository.BookingRepository
	generatorRepo repository.GeneratorRepository
	customerRepo  repository.CustomerRepository
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	generatorRepo repository.GeneratorRepository,
	customerRepo repository.CustomerRepository,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		generatorRepo: generatorRepo,
		customerRepo:  customerRepo,
	}
}

func (s *bookingService) CreateManualBooking(ctx context.Context, input ManualBookingInput) (*domain.Booking, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	gen, err := s.generatorRepo.GetByID(ctx, input.GeneratorID)
	if err != nil {
		return nil, err
	}

	if input.Quantity > gen.AvailableUnits() {
		return nil, fmt.Errorf("%w: only %d units of %s available", ErrOutOfStock, gen.AvailableUnits(), gen.Name)
	}

	totalCost, err := utils.RentalCost(gen.PricePerDay, input.Quantity, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	booking := &domain.Booking{
		CustomerName:  customer.Name,
		GeneratorID:   gen.ID,
		GeneratorName: gen.Name,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Source:        domain.BookingSourceManual,
		BookedUnits:   selectAvailableUnits(gen, input.Quantity),
		TotalCost:     totalCost,
	}

	if err := s.bookingRepo.Create(ctx, booking, customer.ID); err != nil {
		return nil, err
	}

	logger.Info("Manual booking created", "booking_id", booking.ID, "customer_id", customer.ID, "generator_id", gen.ID, "quantity", input.Quantity)
	return booking, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if status != domain.BookingStatusApproved && status != domain.BookingStatusRejected {
		return nil, fmt.Errorf("%w: bookings can only be set to Approved or Rejected", ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Repeating the current status must not re-fire the unit cascade.
	if booking.Status == status {
		return booking, nil
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	logger.Info("Booking status changed", "booking_id", id, "from", booking.Status, "to", status, "units", len(updated.BookedUnits))
	return updated, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// selectAvailableUnits snapshots the first N available units of a model in
// stored order. There is no reservation lock behind this selection;
// concurrent checkouts can pick the same unit, which is resolved only at
// admin approval time.
func selectAvailableUnits(gen *domain.Generator, quantity int32) []domain.BookedUnit {
	units := make([]domain.BookedUnit, 0, quantity)
	for _, u := range gen.Units {
		if int32(len(units)) == quantity {
			break
		}
		if u.Status == domain.UnitStatusAvailable {
			units = append(units, domain.BookedUnit{ID: u.ID, SerialNumber: u.SerialNumber})
		}
	}
	return units
}
