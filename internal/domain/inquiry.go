package domain

import "time"

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "New"
	InquiryStatusContacted InquiryStatus = "Contacted"
)

// Inquiry is a lead captured when a customer asks about an out-of-stock
// model. Not part of the booking lifecycle.
type Inquiry struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	GeneratorID   string        `json:"generatorId"`
	GeneratorName string        `json:"generatorName"`
	Date          time.Time     `json:"date"`
	Status        InquiryStatus `json:"status"`
}
