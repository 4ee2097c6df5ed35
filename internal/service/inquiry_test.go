package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
)

func TestInquiryService_AddInquiry(t *testing.T) {
	store := newSeededStore(t)
	svc := NewInquiryService(store.InquiryRepository, store.GeneratorRepository)
	ctx := context.Background()

	inquiry, err := svc.AddInquiry(ctx, "Dana White", "555-222-3333", "M003")
	require.NoError(t, err)
	assert.Equal(t, "I001", inquiry.ID)
	assert.Equal(t, domain.InquiryStatusNew, inquiry.Status)
	// The model name is resolved server-side, not trusted from the client.
	assert.Equal(t, "Generac SD200", inquiry.GeneratorName)
}

func TestInquiryService_AddInquiryValidation(t *testing.T) {
	store := newSeededStore(t)
	svc := NewInquiryService(store.InquiryRepository, store.GeneratorRepository)
	ctx := context.Background()

	_, err := svc.AddInquiry(ctx, "", "555-222-3333", "M003")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddInquiry(ctx, "Dana", "123", "M003")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddInquiry(ctx, "Dana", "555-222-3333", "M999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInquiryService_UpdateStatus(t *testing.T) {
	store := newSeededStore(t)
	svc := NewInquiryService(store.InquiryRepository, store.GeneratorRepository)
	ctx := context.Background()

	inquiry, err := svc.AddInquiry(ctx, "Dana White", "555-222-3333", "M003")
	require.NoError(t, err)

	updated, err := svc.UpdateInquiryStatus(ctx, inquiry.ID, domain.InquiryStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryStatusContacted, updated.Status)

	_, err = svc.UpdateInquiryStatus(ctx, inquiry.ID, "Closed")
	assert.ErrorIs(t, err, ErrValidation)
}
