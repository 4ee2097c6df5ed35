package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusApproved BookingStatus = "Approved"
	BookingStatusRejected BookingStatus = "Rejected"
)

type BookingSource string

const (
	BookingSourceOnline BookingSource = "Online"
	BookingSourceManual BookingSource = "Manual"
)

// BookedUnit is a point-in-time snapshot of a unit taken when the booking
// was created. It is deliberately not a live reference so historical
// bookings survive later unit edits.
type BookedUnit struct {
	ID           string `json:"id"`
	SerialNumber string `json:"serialNumber"`
}

type Booking struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	// GeneratorID and GeneratorName may list several models for online
	// checkouts ("M001, M002"), since one cart produces one booking.
	GeneratorID   string        `json:"generatorId"`
	GeneratorName string        `json:"generatorName"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	Status        BookingStatus `json:"status"`
	Source        BookingSource `json:"source"`
	BookedUnits   []BookedUnit  `json:"bookedUnits"`
	TotalCost     int32         `json:"totalCost"`
}
