package service

import (
	"context"
	"fmt"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
)

type catalogService struct {
	generatorRepo repository.GeneratorRepository
}

func NewCatalogService(generatorRepo repository.GeneratorRepository) CatalogService {
	return &catalogService{generatorRepo: generatorRepo}
}

func (s *catalogService) ListGenerators(ctx context.Context) ([]domain.Generator, error) {
	return s.generatorRepo.List(ctx)
}

func (s *catalogService) GetGenerator(ctx context.Context, id string) (*domain.Generator, error) {
	return s.generatorRepo.GetByID(ctx, id)
}

func (s *catalogService) AddGenerator(ctx context.Context, gen *domain.Generator) error {
	if gen.Name == "" {
		return fmt.Errorf("%w: generator name is required", ErrValidation)
	}
	if gen.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	if gen.PricePerDay < 0 || gen.PricePerMonth < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrValidation)
	}
	if gen.FuelType != domain.FuelTypeDiesel && gen.FuelType != domain.FuelTypePetrol {
		return fmt.Errorf("%w: unknown fuel type %q", ErrValidation, gen.FuelType)
	}
	for _, u := range gen.Units {
		if !validUnitStatus(u.Status) {
			return fmt.Errorf("%w: unknown unit status %q", ErrValidation, u.Status)
		}
	}

	// New models start off the featured shelf with an empty description;
	// the admin fills those in afterwards.
	gen.Featured = false
	if gen.Units == nil {
		gen.Units = []domain.GeneratorUnit{}
	}
	return s.generatorRepo.Create(ctx, gen)
}

func (s *catalogService) UpdateGenerator(ctx context.Context, id string, update GeneratorUpdate) (*domain.Generator, error) {
	gen, err := s.generatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		gen.Name = *update.Name
	}
	if update.Capacity != nil {
		gen.Capacity = *update.Capacity
	}
	if update.PricePerDay != nil {
		gen.PricePerDay = *update.PricePerDay
	}
	if update.PricePerMonth != nil {
		gen.PricePerMonth = *update.PricePerMonth
	}
	if update.ImageURL != nil {
		gen.ImageURL = *update.ImageURL
	}
	if update.FuelType != nil {
		if *update.FuelType != domain.FuelTypeDiesel && *update.FuelType != domain.FuelTypePetrol {
			return nil, fmt.Errorf("%w: unknown fuel type %q", ErrValidation, *update.FuelType)
		}
		gen.FuelType = *update.FuelType
	}
	if update.Featured != nil {
		gen.Featured = *update.Featured
	}
	if update.Description != nil {
		gen.Description = *update.Description
	}
	if update.Units != nil {
		for _, u := range *update.Units {
			if !validUnitStatus(u.Status) {
				return nil, fmt.Errorf("%w: unknown unit status %q", ErrValidation, u.Status)
			}
		}
		gen.Units = *update.Units
	}

	if err := s.generatorRepo.Update(ctx, gen); err != nil {
		return nil, err
	}
	return gen, nil
}

func validUnitStatus(status domain.UnitStatus) bool {
	switch status {
	case domain.UnitStatusAvailable, domain.UnitStatusRented, domain.UnitStatusMaintenance:
		return true
	}
	return false
}
