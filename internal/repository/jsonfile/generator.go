package jsonfile

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"rentalhq-backend/internal/domain"
	"rentalhq-backend/internal/repository"
	"rentalhq-backend/internal/storage"
)

type generatorRepository struct {
	db *db
}

func (r *generatorRepository) Create(ctx context.Context, gen *domain.Generator) error {
	return r.db.update("generator.create", func(doc *storage.Document) error {
		gen.ID = nextID("M", len(doc.Generators))
		assignUnitIDs(doc, gen.Units)
		doc.Generators = append(doc.Generators, *gen)
		return nil
	})
}

func (r *generatorRepository) GetByID(ctx context.Context, id string) (*domain.Generator, error) {
	var gen *domain.Generator
	err := r.db.view(func(doc *storage.Document) error {
		for i := range doc.Generators {
			if doc.Generators[i].ID == id {
				g := doc.Generators[i]
				gen = &g
				return nil
			}
		}
		return fmt.Errorf("generator %s: %w", id, repository.ErrNotFound)
	})
	return gen, err
}

func (r *generatorRepository) Update(ctx context.Context, gen *domain.Generator) error {
	return r.db.update("generator.update", func(doc *storage.Document) error {
		for i := range doc.Generators {
			if doc.Generators[i].ID == gen.ID {
				assignUnitIDs(doc, gen.Units)
				doc.Generators[i] = *gen
				return nil
			}
		}
		return fmt.Errorf("generator %s: %w", gen.ID, repository.ErrNotFound)
	})
}

func (r *generatorRepository) List(ctx context.Context) ([]domain.Generator, error) {
	var gens []domain.Generator
	err := r.db.view(func(doc *storage.Document) error {
		gens = doc.Generators
		return nil
	})
	return gens, err
}

// assignUnitIDs fills in ids for units added without one, continuing the
// global G-sequence from the highest suffix ever assigned. Unit edits can
// remove units, so the sequence runs off the maximum rather than the live
// count; booked-unit snapshots are scanned too, so an id referenced by a
// booking is never reissued to a different machine.
func assignUnitIDs(doc *storage.Document, units []domain.GeneratorUnit) {
	next := 0
	bump := func(id string) {
		if n := unitIDNumber(id); n > next {
			next = n
		}
	}
	for i := range doc.Generators {
		for _, u := range doc.Generators[i].Units {
			bump(u.ID)
		}
	}
	for i := range doc.Bookings {
		for _, bu := range doc.Bookings[i].BookedUnits {
			bump(bu.ID)
		}
	}
	for _, u := range units {
		bump(u.ID)
	}

	for i := range units {
		if units[i].ID == "" {
			next++
			units[i].ID = fmt.Sprintf("G%03d", next)
		}
	}
}

func unitIDNumber(id string) int {
	if !strings.HasPrefix(id, "G") {
		return 0
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0
	}
	return n
}
