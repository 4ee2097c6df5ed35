package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/utils"
)

// cartService keeps per-session carts in memory. A cart is advisory
// staging only: it never mutates persisted unit status, and every
// availability check reads the catalog fresh so approvals made elsewhere
// are reflected immediately.
type cartService struct {
	mu            sync.Mutex
	carts         map[string][]domain.CartLine
	generatorRepo repository.GeneratorRepository
}

func NewCartService(generatorRepo repository.GeneratorRepository) CartService {
	return &cartService{
		carts:         make(map[string][]domain.CartLine),
		generatorRepo: generatorRepo,
	}
}

func (s *cartService) Items(ctx context.Context, sessionID string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]domain.CartLine, len(s.carts[sessionID]))
	copy(lines, s.carts[sessionID])
	return lines
}

func (s *cartService) AddToCart(ctx context.Context, sessionID, generatorID string) error {
	available, err := s.AvailableUnits(ctx, generatorID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].GeneratorID == generatorID {
			if lines[i].Quantity >= available {
				return fmt.Errorf("%w: %d of %d units already in cart", ErrOutOfStock, lines[i].Quantity, available)
			}
			lines[i].Quantity++
			return nil
		}
	}

	if available < 1 {
		return fmt.Errorf("%w: no units available", ErrOutOfStock)
	}
	s.carts[sessionID] = append(lines, domain.CartLine{GeneratorID: generatorID, Quantity: 1})
	return nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, generatorID string, quantity int32) error {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, sessionID, generatorID)
		return nil
	}

	available, err := s.AvailableUnits(ctx, generatorID)
	if err != nil {
		return err
	}
	if quantity > available {
		return fmt.Errorf("%w: requested %d, only %d available", ErrOutOfStock, quantity, available)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].GeneratorID == generatorID {
			lines[i].Quantity = quantity
			return nil
		}
	}
	s.carts[sessionID] = append(lines, domain.CartLine{GeneratorID: generatorID, Quantity: quantity})
	return nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, sessionID, generatorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].GeneratorID == generatorID {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

func (s *cartService) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func (s *cartService) Count(ctx context.Context, sessionID string) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int32
	for _, line := range s.carts[sessionID] {
		total += line.Quantity
	}
	return total
}

// AvailableUnits reads the live count of Available units for a model from
// the current catalog snapshot. An unknown model counts as zero, matching
// the storefront's behavior for stale cart references; any other
// repository failure propagates.
func (s *cartService) AvailableUnits(ctx context.Context, generatorID string) (int32, error) {
	gen, err := s.generatorRepo.GetByID(ctx, generatorID)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return gen.AvailableUnits(), nil
}

func (s *cartService) TotalCost(ctx context.Context, sessionID string, start, end time.Time) (int32, error) {
	days, err := utils.RentalDays(start, end)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var total int32
	for _, line := range s.Items(ctx, sessionID) {
		gen, err := s.generatorRepo.GetByID(ctx, line.GeneratorID)
		if err != nil {
			return 0, err
		}
		total += gen.PricePerDay * line.Quantity * days
	}
	return total, nil
}
