package jsonfile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	snap := storage.NewSnapshot(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, snap.Save(storage.SeedDocument(time.Now())))
	return NewStore(snap)
}

func unitStatus(t *testing.T, store *Store, generatorID, unitID string) domain.UnitStatus {
	t.Helper()
	gen, err := store.GeneratorRepository.GetByID(context.Background(), generatorID)
	require.NoError(t, err)
	unit := gen.FindUnit(unitID)
	require.NotNil(t, unit)
	return unit.Status
}

func TestStore_MissingFileReadsEmpty(t *testing.T) {
	snap := storage.NewSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	store := NewStore(snap)

	doc, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Generators)
	assert.Empty(t, doc.Bookings)
	assert.Empty(t, doc.Customers)
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	snap := storage.NewSnapshot(path)
	seeded := storage.SeedDocument(time.Now())
	require.NoError(t, snap.Save(seeded))

	doc, err := NewStore(storage.NewSnapshot(path)).All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seeded.Generators, doc.Generators)
	assert.Equal(t, seeded.Customers, doc.Customers)

	require.Len(t, doc.Reviews, len(seeded.Reviews))
	for i := range seeded.Reviews {
		assert.Equal(t, seeded.Reviews[i].ID, doc.Reviews[i].ID)
		assert.Equal(t, seeded.Reviews[i].Rating, doc.Reviews[i].Rating)
		assert.WithinDuration(t, seeded.Reviews[i].Date, doc.Reviews[i].Date, time.Second)
	}

	require.Len(t, doc.Bookings, len(seeded.Bookings))
	for i := range seeded.Bookings {
		assert.Equal(t, seeded.Bookings[i].ID, doc.Bookings[i].ID)
		assert.WithinDuration(t, seeded.Bookings[i].StartDate, doc.Bookings[i].StartDate, time.Second)
		assert.WithinDuration(t, seeded.Bookings[i].EndDate, doc.Bookings[i].EndDate, time.Second)
	}
	for i := range seeded.Payments {
		assert.WithinDuration(t, seeded.Payments[i].TransactionDate, doc.Payments[i].TransactionDate, time.Second)
	}
}

func TestGeneratorRepository_CreateAssignsIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	gen := &domain.Generator{
		Name:        "Atlas QAS 100",
		Capacity:    100,
		PricePerDay: 120,
		FuelType:    domain.FuelTypeDiesel,
		Units: []domain.GeneratorUnit{
			{SerialNumber: "ATL-2024-001", Status: domain.UnitStatusAvailable},
		},
	}
	require.NoError(t, store.GeneratorRepository.Create(ctx, gen))

	assert.Equal(t, "M005", gen.ID)
	// The seed catalog already holds units G001..G008.
	assert.Equal(t, "G009", gen.Units[0].ID)
}

func TestGeneratorRepository_UnitIDsNotReissuedAfterRemoval(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Drop G003 from M001's fleet.
	m1, err := store.GeneratorRepository.GetByID(ctx, "M001")
	require.NoError(t, err)
	kept := make([]domain.GeneratorUnit, 0, len(m1.Units))
	for _, u := range m1.Units {
		if u.ID != "G003" {
			kept = append(kept, u)
		}
	}
	m1.Units = kept
	require.NoError(t, store.GeneratorRepository.Update(ctx, m1))

	// A blank-id unit added to another model must continue the sequence
	// past the highest id ever assigned, not refill the gap.
	m2, err := store.GeneratorRepository.GetByID(ctx, "M002")
	require.NoError(t, err)
	m2.Units = append(m2.Units, domain.GeneratorUnit{SerialNumber: "CUM-2024-002", Status: domain.UnitStatusAvailable})
	require.NoError(t, store.GeneratorRepository.Update(ctx, m2))
	assert.Equal(t, "G009", m2.Units[1].ID)

	// Every live unit id identifies exactly one machine.
	gens, err := store.GeneratorRepository.List(ctx)
	require.NoError(t, err)
	seen := map[string]int{}
	for _, g := range gens {
		for _, u := range g.Units {
			seen[u.ID]++
		}
	}
	for id, n := range seen {
		assert.Equalf(t, 1, n, "unit id %s assigned to more than one live unit", id)
	}
}

func TestGeneratorRepository_BookedUnitIDsNotReissued(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Book G008, then remove it from the fleet entirely.
	booking := &domain.Booking{
		CustomerName: "Alice Johnson",
		GeneratorID:  "M001",
		StartDate:    time.Now(),
		EndDate:      time.Now().AddDate(0, 0, 2),
		Source:       domain.BookingSourceManual,
		BookedUnits:  []domain.BookedUnit{{ID: "G008", SerialNumber: "CAT-2023-004"}},
	}
	require.NoError(t, store.BookingRepository.Create(ctx, booking, "C001"))

	m1, err := store.GeneratorRepository.GetByID(ctx, "M001")
	require.NoError(t, err)
	kept := make([]domain.GeneratorUnit, 0, len(m1.Units))
	for _, u := range m1.Units {
		if u.ID != "G008" {
			kept = append(kept, u)
		}
	}
	m1.Units = kept
	require.NoError(t, store.GeneratorRepository.Update(ctx, m1))

	// The booking's snapshot still references G008, so a new unit must
	// not be given that id: an approval cascade would rent it by mistake.
	m2, err := store.GeneratorRepository.GetByID(ctx, "M002")
	require.NoError(t, err)
	m2.Units = append(m2.Units, domain.GeneratorUnit{SerialNumber: "CUM-2024-003", Status: domain.UnitStatusAvailable})
	require.NoError(t, store.GeneratorRepository.Update(ctx, m2))
	assert.Equal(t, "G009", m2.Units[1].ID)

	_, err = store.BookingRepository.UpdateStatus(ctx, booking.ID, domain.BookingStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitStatusAvailable, unitStatus(t, store, "M002", "G009"))
}

func TestBookingRepository_CreateIncrementsCustomerCounter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	before, err := store.CustomerRepository.GetByID(ctx, "C001")
	require.NoError(t, err)

	booking := &domain.Booking{
		CustomerName:  before.Name,
		GeneratorID:   "M001",
		GeneratorName: "CAT G3516",
		StartDate:     time.Now(),
		EndDate:       time.Now().AddDate(0, 0, 3),
		Source:        domain.BookingSourceManual,
		BookedUnits:   []domain.BookedUnit{{ID: "G001", SerialNumber: "CAT-2023-001"}},
		TotalCost:     2000,
	}
	require.NoError(t, store.BookingRepository.Create(ctx, booking, "C001"))

	assert.Equal(t, "B004", booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)

	after, err := store.CustomerRepository.GetByID(ctx, "C001")
	require.NoError(t, err)
	assert.Equal(t, before.TotalBookings+1, after.TotalBookings)

	// Newest booking first.
	bookings, err := store.BookingRepository.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B004", bookings[0].ID)
}

func TestBookingRepository_CreateUnknownCustomer(t *testing.T) {
	store := newTestStore(t)

	err := store.BookingRepository.Create(context.Background(), &domain.Booking{}, "C999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBookingRepository_StatusCascade(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	booking := &domain.Booking{
		CustomerName:  "Alice Johnson",
		GeneratorID:   "M001",
		GeneratorName: "CAT G3516",
		StartDate:     time.Now(),
		EndDate:       time.Now().AddDate(0, 0, 3),
		Source:        domain.BookingSourceOnline,
		BookedUnits: []domain.BookedUnit{
			{ID: "G001", SerialNumber: "CAT-2023-001"},
			{ID: "G008", SerialNumber: "CAT-2023-004"},
		},
	}
	require.NoError(t, store.BookingRepository.Create(ctx, booking, "C001"))
	require.Equal(t, domain.UnitStatusAvailable, unitStatus(t, store, "M001", "G001"))

	// Pending to Approved rents every booked unit.
	updated, err := store.BookingRepository.UpdateStatus(ctx, booking.ID, domain.BookingStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, updated.Status)
	assert.Equal(t, domain.UnitStatusRented, unitStatus(t, store, "M001", "G001"))
	assert.Equal(t, domain.UnitStatusRented, unitStatus(t, store, "M001", "G008"))

	// Approved to Rejected releases them again.
	updated, err = store.BookingRepository.UpdateStatus(ctx, booking.ID, domain.BookingStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, updated.Status)
	assert.Equal(t, domain.UnitStatusAvailable, unitStatus(t, store, "M001", "G001"))
	assert.Equal(t, domain.UnitStatusAvailable, unitStatus(t, store, "M001", "G008"))
}

func TestBookingRepository_PendingToRejectedLeavesUnits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	booking := &domain.Booking{
		CustomerName: "Alice Johnson",
		GeneratorID:  "M001",
		StartDate:    time.Now(),
		EndDate:      time.Now().AddDate(0, 0, 1),
		Source:       domain.BookingSourceOnline,
		BookedUnits:  []domain.BookedUnit{{ID: "G001", SerialNumber: "CAT-2023-001"}},
	}
	require.NoError(t, store.BookingRepository.Create(ctx, booking, "C001"))

	// Rejecting a pending booking touches only the booking record.
	updated, err := store.BookingRepository.UpdateStatus(ctx, booking.ID, domain.BookingStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, updated.Status)
	assert.Equal(t, domain.UnitStatusAvailable, unitStatus(t, store, "M001", "G001"))
}

func TestBookingRepository_UpdateStatusNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.BookingRepository.UpdateStatus(context.Background(), "B999", domain.BookingStatusApproved)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCustomerRepository_GetByPhone(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	customer, err := store.CustomerRepository.GetByPhone(ctx, "555-123-4567")
	require.NoError(t, err)
	assert.Equal(t, "C001", customer.ID)

	_, err = store.CustomerRepository.GetByPhone(ctx, "000-000-0000")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCustomerRepository_UpdatePreservesCounter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	customer, err := store.CustomerRepository.GetByID(ctx, "C001")
	require.NoError(t, err)

	customer.Address = "1 New Address Rd"
	customer.TotalBookings = 99 // must be ignored
	require.NoError(t, store.CustomerRepository.Update(ctx, customer))

	after, err := store.CustomerRepository.GetByID(ctx, "C001")
	require.NoError(t, err)
	assert.Equal(t, "1 New Address Rd", after.Address)
	assert.Equal(t, int32(1), after.TotalBookings)
}

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payment, err := store.PaymentRepository.UpdateStatus(ctx, "P002", domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, payment.Status)

	_, err = store.PaymentRepository.UpdateStatus(ctx, "P999", domain.PaymentStatusPaid)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInquiryRepository_CreateAndUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	inquiry := &domain.Inquiry{
		CustomerName:  "Dana White",
		CustomerPhone: "555-222-3333",
		GeneratorID:   "M003",
		GeneratorName: "Generac SD200",
		Date:          time.Now(),
	}
	require.NoError(t, store.InquiryRepository.Create(ctx, inquiry))
	assert.Equal(t, "I001", inquiry.ID)
	assert.Equal(t, domain.InquiryStatusNew, inquiry.Status)

	updated, err := store.InquiryRepository.UpdateStatus(ctx, "I001", domain.InquiryStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryStatusContacted, updated.Status)
}

func TestStore_MutationsPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	snap := storage.NewSnapshot(path)
	require.NoError(t, snap.Save(storage.SeedDocument(time.Now())))

	store := NewStore(snap)
	ctx := context.Background()
	_, err := store.PaymentRepository.UpdateStatus(ctx, "P002", domain.PaymentStatusPaid)
	require.NoError(t, err)

	reopened := NewStore(storage.NewSnapshot(path))
	payments, err := reopened.PaymentRepository.List(ctx)
	require.NoError(t, err)
	for _, p := range payments {
		if p.ID == "P002" {
			assert.Equal(t, domain.PaymentStatusPaid, p.Status)
			return
		}
	}
	t.Fatal("payment P002 not found after reopen")
}

func TestGeneratorRepository_UpdateUnknown(t *testing.T) {
	store := newTestStore(t)

	err := store.GeneratorRepository.Update(context.Background(), &domain.Generator{ID: "M999"})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
