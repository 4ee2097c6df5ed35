package domain

import "time"

type Review struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int32     `json:"rating"` // 1-5
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
}
