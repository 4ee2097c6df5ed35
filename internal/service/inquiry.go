package service

import (
	"context"
	"fmt"
	"time"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
)

type inquiryService struct {
	inquiryRepo   repository.InquiryRepository
	generatorRepo repository.GeneratorRepository
}

func NewInquiryService(inquiryRepo repository.InquiryRepository, generatorRepo repository.GeneratorRepository) InquiryService {
	return &inquiryService{
		inquiryRepo:   inquiryRepo,
		generatorRepo: generatorRepo,
	}
}

func (s *inquiryService) AddInquiry(ctx context.Context, customerName, customerPhone, generatorID string) (*domain.Inquiry, error) {
	if customerName == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(customerPhone) < 10 {
		return nil, fmt.Errorf("%w: please enter a valid phone number", ErrValidation)
	}

	gen, err := s.generatorRepo.GetByID(ctx, generatorID)
	if err != nil {
		return nil, err
	}

	inquiry := &domain.Inquiry{
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		GeneratorID:   gen.ID,
		GeneratorName: gen.Name,
		Date:          time.Now(),
	}
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (s *inquiryService) UpdateInquiryStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	if status != domain.InquiryStatusNew && status != domain.InquiryStatusContacted {
		return nil, fmt.Errorf("%w: unknown inquiry status %q", ErrValidation, status)
	}
	return s.inquiryRepo.UpdateStatus(ctx, id, status)
}

func (s *inquiryService) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	return s.inquiryRepo.List(ctx)
}
