package service

import (
	"context"
	"fmt"
	"time"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) RecordPayment(ctx context.Context, bookingID string, amount int32, method string, status domain.PaymentStatus) (*domain.Payment, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if method == "" {
		return nil, fmt.Errorf("%w: payment method is required", ErrValidation)
	}
	if status != domain.PaymentStatusPaid && status != domain.PaymentStatusUnpaid {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}

	payment := &domain.Payment{
		BookingID:       bookingID,
		Amount:          amount,
		Method:          method,
		Status:          status,
		TransactionDate: time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error) {
	if status != domain.PaymentStatusPaid && status != domain.PaymentStatusUnpaid {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}
	return s.paymentRepo.UpdateStatus(ctx, id, status)
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}
