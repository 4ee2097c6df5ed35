package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Paid"
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

// Payment is a manually recorded payment entry. BookingID is a loose link;
// referential integrity against the booking set is not enforced.
type Payment struct {
	ID              string        `json:"id"`
	BookingID       string        `json:"bookingId"`
	Amount          int32         `json:"amount"`
	Method          string        `json:"method"`
	Status          PaymentStatus `json:"status"`
	TransactionDate time.Time     `json:"transactionDate"`
}
