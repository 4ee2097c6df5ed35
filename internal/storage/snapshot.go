package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/logger"
)

// Document is the entire persisted state: one JSON file holding every
// collection. It is always read in full and replaced in full.
type Document struct {
	Generators []domain.Generator `json:"generators"`
	Bookings   []domain.Booking   `json:"bookings"`
	Payments   []domain.Payment   `json:"payments"`
	Customers  []domain.Customer  `json:"customers"`
	Reviews    []domain.Review    `json:"reviews"`
	Inquiries  []domain.Inquiry   `json:"inquiries"`
}

// NewDocument returns a document with every collection present but empty.
func NewDocument() *Document {
	return &Document{
		Generators: []domain.Generator{},
		Bookings:   []domain.Booking{},
		Payments:   []domain.Payment{},
		Customers:  []domain.Customer{},
		Reviews:    []domain.Review{},
		Inquiries:  []domain.Inquiry{},
	}
}

// normalize replaces nil collections with empty slices so older documents
// written before a collection existed still load cleanly.
func (d *Document) normalize() {
	if d.Generators == nil {
		d.Generators = []domain.Generator{}
	}
	if d.Bookings == nil {
		d.Bookings = []domain.Booking{}
	}
	if d.Payments == nil {
		d.Payments = []domain.Payment{}
	}
	if d.Customers == nil {
		d.Customers = []domain.Customer{}
	}
	if d.Reviews == nil {
		d.Reviews = []domain.Review{}
	}
	if d.Inquiries == nil {
		d.Inquiries = []domain.Inquiry{}
	}
}

// Snapshot reads and writes the document as a whole. A write is a single
// atomic file replacement (temp file + rename), so a crash mid-write leaves
// either the old snapshot or the new one on disk, never a mix.
type Snapshot struct {
	path string
}

func NewSnapshot(path string) *Snapshot {
	return &Snapshot{path: path}
}

// Path returns the location of the backing file.
func (s *Snapshot) Path() string {
	return s.path
}

// Exists reports whether the backing file is present on disk.
func (s *Snapshot) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the full document. A missing or corrupt file degrades to an
// empty document so reads never fail outright; the condition is logged.
func (s *Snapshot) Load() *Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		logger.Warn("Data file unreadable, serving empty collections", "path", s.path, "error", err)
		return NewDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Error("Data file corrupt, serving empty collections", "path", s.path, "error", err)
		return NewDocument()
	}
	doc.normalize()
	return &doc
}

// Save replaces the backing file with the given document.
func (s *Snapshot) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
