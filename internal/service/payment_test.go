package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
)

func TestPaymentService_RecordPayment(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPaymentService(store.PaymentRepository)
	ctx := context.Background()

	payment, err := svc.RecordPayment(ctx, "B001", 7000, "Bank Transfer", domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, "P003", payment.ID)
	assert.WithinDuration(t, time.Now(), payment.TransactionDate, 5*time.Second)

	// Newest payment first.
	payments, err := svc.ListPayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, "P003", payments[0].ID)
}

func TestPaymentService_RecordPaymentValidation(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPaymentService(store.PaymentRepository)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, "", 100, "Cash", domain.PaymentStatusPaid)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordPayment(ctx, "B001", 0, "Cash", domain.PaymentStatusPaid)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordPayment(ctx, "B001", 100, "", domain.PaymentStatusPaid)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordPayment(ctx, "B001", 100, "Cash", "Refunded")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPaymentService_UpdateStatus(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPaymentService(store.PaymentRepository)
	ctx := context.Background()

	payment, err := svc.UpdatePaymentStatus(ctx, "P002", domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, payment.Status)

	_, err = svc.UpdatePaymentStatus(ctx, "P002", "Refunded")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdatePaymentStatus(ctx, "P999", domain.PaymentStatusPaid)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
