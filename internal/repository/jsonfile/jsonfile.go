// Package jsonfile implements the repositories over a single JSON document
// that is read fully and replaced fully on every mutation. Mutations
// serialize on one mutex, so inside the process each read-modify-write
// cycle sees the previous one's result; on disk the replacement itself is
// atomic (temp file + rename). This is the documented single-writer model:
// there is no cross-process locking and no optimistic-concurrency token.
package jsonfile

import (
	"context"
	"fmt"
	"sync"

	"rentalhq-backend/internal/logger"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/storage"
)

type db struct {
	mu   sync.Mutex
	snap *storage.Snapshot
}

// view runs fn against a freshly loaded document without writing it back.
func (d *db) view(fn func(doc *storage.Document) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(d.snap.Load())
}

// update loads the document, applies fn and writes the whole document
// back. If fn fails nothing is written and the error surfaces to the
// caller. A failed write is logged and swallowed: the mutation still
// reports success to match the storefront's original behavior of never
// failing a request on a disk write.
func (d *db) update(operation string, fn func(doc *storage.Document) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	logger.StoreCall(operation)
	doc := d.snap.Load()
	if err := fn(doc); err != nil {
		logger.StoreResult(operation, err)
		return err
	}
	if err := d.snap.Save(doc); err != nil {
		logger.StoreResult(operation, err)
		return nil
	}
	logger.StoreResult(operation, nil)
	return nil
}

// nextID yields sequential display ids like B001, P012. Records are never
// deleted, so length+1 cannot collide.
func nextID(prefix string, count int) string {
	return fmt.Sprintf("%s%03d", prefix, count+1)
}

// Store bundles every repository over one shared document handle.
type Store struct {
	db *db
	repository.GeneratorRepository
	repository.BookingRepository
	repository.CustomerRepository
	repository.PaymentRepository
	repository.ReviewRepository
	repository.InquiryRepository
}

func NewStore(snap *storage.Snapshot) *Store {
	d := &db{snap: snap}
	return &Store{
		db:                   d,
		GeneratorRepository:  &generatorRepository{db: d},
		BookingRepository:    &bookingRepository{db: d},
		CustomerRepository:   &customerRepository{db: d},
		PaymentRepository:    &paymentRepository{db: d},
		ReviewRepository:     &reviewRepository{db: d},
		InquiryRepository:    &inquiryRepository{db: d},
	}
}

// All returns the full collection set in one read.
func (s *Store) All(ctx context.Context) (*storage.Document, error) {
	var doc *storage.Document
	err := s.db.view(func(d *storage.Document) error {
		doc = d
		return nil
	})
	return doc, err
}
