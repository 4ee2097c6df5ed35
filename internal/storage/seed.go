package storage

import (
	"time"

	"rentalhq-backend/internal/domain"
)

// SeedDocument builds the demo catalog used to initialize a fresh store.
// Booking and payment dates are placed relative to now so the admin
// dashboard shows a live-looking history.
func SeedDocument(now time.Time) *Document {
	day := 24 * time.Hour

	return &Document{
		Generators: []domain.Generator{
			{
				ID:            "M001",
				Name:          "CAT G3516",
				Capacity:      1500,
				PricePerDay:   500,
				PricePerMonth: 12000,
				ImageURL:      "https://picsum.photos/400/300",
				FuelType:      domain.FuelTypeDiesel,
				Featured:      true,
				Description:   "A high-performance diesel generator suitable for large-scale industrial needs. Reliable and efficient.",
				Units: []domain.GeneratorUnit{
					{ID: "G001", SerialNumber: "CAT-2023-001", Status: domain.UnitStatusAvailable},
					{ID: "G002", SerialNumber: "CAT-2023-002", Status: domain.UnitStatusRented},
					{ID: "G003", SerialNumber: "CAT-2023-003", Status: domain.UnitStatusMaintenance},
					{ID: "G008", SerialNumber: "CAT-2023-004", Status: domain.UnitStatusAvailable},
				},
			},
			{
				ID:            "M002",
				Name:          "Cummins QSK60",
				Capacity:      2000,
				PricePerDay:   750,
				PricePerMonth: 18000,
				ImageURL:      "https://picsum.photos/400/301",
				FuelType:      domain.FuelTypeDiesel,
				Featured:      true,
				Description:   "Top-of-the-line power generation for critical applications. Unmatched performance and durability.",
				Units: []domain.GeneratorUnit{
					{ID: "G004", SerialNumber: "CUM-2023-001", Status: domain.UnitStatusAvailable},
				},
			},
			{
				ID:            "M003",
				Name:          "Generac SD200",
				Capacity:      200,
				PricePerDay:   150,
				PricePerMonth: 3500,
				ImageURL:      "https://picsum.photos/400/302",
				FuelType:      domain.FuelTypePetrol,
				Featured:      false,
				Description:   "A versatile and portable petrol generator, perfect for residential backup or small events.",
				Units: []domain.GeneratorUnit{
					{ID: "G005", SerialNumber: "GEN-2023-001", Status: domain.UnitStatusRented},
				},
			},
			{
				ID:            "M004",
				Name:          "Kohler KD1000",
				Capacity:      1000,
				PricePerDay:   400,
				PricePerMonth: 9500,
				ImageURL:      "https://picsum.photos/400/303",
				FuelType:      domain.FuelTypeDiesel,
				Featured:      true,
				Description:   "A powerful and compact diesel generator, ideal for mid-sized commercial or construction use.",
				Units: []domain.GeneratorUnit{
					{ID: "G006", SerialNumber: "KOH-2023-001", Status: domain.UnitStatusMaintenance},
					{ID: "G007", SerialNumber: "KOH-2023-002", Status: domain.UnitStatusAvailable},
				},
			},
		},
		Bookings: []domain.Booking{
			{
				ID:            "B001",
				CustomerName:  "Alice Johnson",
				GeneratorID:   "M002",
				GeneratorName: "Cummins QSK60",
				StartDate:     now.Add(-5 * day),
				EndDate:       now.Add(5 * day),
				Status:        domain.BookingStatusApproved,
				Source:        domain.BookingSourceOnline,
				BookedUnits:   []domain.BookedUnit{{ID: "G004", SerialNumber: "CUM-2023-001"}},
				TotalCost:     7500,
			},
			{
				ID:            "B002",
				CustomerName:  "Bob Williams",
				GeneratorID:   "M003",
				GeneratorName: "Generac SD200",
				StartDate:     now.Add(-2 * day),
				EndDate:       now.Add(10 * day),
				Status:        domain.BookingStatusPending,
				Source:        domain.BookingSourceManual,
				BookedUnits:   []domain.BookedUnit{{ID: "G005", SerialNumber: "GEN-2023-001"}},
				TotalCost:     1800,
			},
			{
				ID:            "B003",
				CustomerName:  "Charlie Brown",
				GeneratorID:   "M001",
				GeneratorName: "CAT G3516",
				StartDate:     now.Add(-10 * day),
				EndDate:       now.Add(-3 * day),
				Status:        domain.BookingStatusRejected,
				Source:        domain.BookingSourceOnline,
				BookedUnits:   []domain.BookedUnit{},
				TotalCost:     3500,
			},
		},
		Payments: []domain.Payment{
			{
				ID:              "P001",
				BookingID:       "B001",
				Amount:          7500,
				Method:          "Credit Card",
				Status:          domain.PaymentStatusPaid,
				TransactionDate: now.Add(-5 * day),
			},
			{
				ID:              "P002",
				BookingID:       "B002",
				Amount:          1800,
				Method:          "Cash",
				Status:          domain.PaymentStatusUnpaid,
				TransactionDate: now.Add(-2 * day),
			},
		},
		Customers: []domain.Customer{
			{ID: "C001", Name: "Alice Johnson", Phone: "555-123-4567", Address: "123 Maple St, Springfield, IL", TotalBookings: 1, Type: domain.CustomerTypeOnline},
			{ID: "C002", Name: "Bob Williams", Phone: "555-987-6543", Address: "456 Oak Ave, Shelbyville, IL", TotalBookings: 1, Type: domain.CustomerTypeOffline},
			{ID: "C003", Name: "Charlie Brown", Phone: "555-555-1212", Address: "789 Pine Ln, Capital City, IL", TotalBookings: 1, Type: domain.CustomerTypeOnline},
		},
		Reviews: []domain.Review{
			{
				ID:           "R001",
				CustomerName: "Construction Co.",
				Rating:       5,
				Comment:      "The CAT G3516 was a beast! Powered our entire construction site without a single issue for a whole month. Delivery was on time and professional.",
				Date:         time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:           "R002",
				CustomerName: "Event Planners Inc.",
				Rating:       4,
				Comment:      "We rented two Kohler generators for an outdoor wedding. They were quiet and reliable. One had a minor issue but support was quick to resolve it.",
				Date:         time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:           "R003",
				CustomerName: "Sarah L.",
				Rating:       5,
				Comment:      "Needed a backup generator for my home during a storm warning. The Generac SD200 was perfect. The booking process online was super easy!",
				Date:         time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		Inquiries: []domain.Inquiry{},
	}
}
