package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_LoadMissingFile(t *testing.T) {
	snap := NewSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.False(t, snap.Exists())

	doc := snap.Load()
	require.NotNil(t, doc)
	assert.NotNil(t, doc.Generators)
	assert.Empty(t, doc.Generators)
	assert.Empty(t, doc.Bookings)
}

func TestSnapshot_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	doc := NewSnapshot(path).Load()
	require.NotNil(t, doc)
	assert.Empty(t, doc.Generators)
}

func TestSnapshot_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	snap := NewSnapshot(path)

	seeded := SeedDocument(time.Now())
	require.NoError(t, snap.Save(seeded))
	assert.True(t, snap.Exists())

	loaded := snap.Load()
	assert.Equal(t, seeded.Generators, loaded.Generators)
	assert.Equal(t, seeded.Customers, loaded.Customers)
	require.Len(t, loaded.Bookings, len(seeded.Bookings))
	for i := range seeded.Bookings {
		assert.Equal(t, seeded.Bookings[i].ID, loaded.Bookings[i].ID)
		assert.WithinDuration(t, seeded.Bookings[i].StartDate, loaded.Bookings[i].StartDate, time.Second)
	}
}

func TestSnapshot_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	snap := NewSnapshot(filepath.Join(dir, "data.json"))
	require.NoError(t, snap.Save(NewDocument()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}

func TestSeedDocument_Shape(t *testing.T) {
	doc := SeedDocument(time.Now())

	assert.Len(t, doc.Generators, 4)
	assert.Len(t, doc.Bookings, 3)
	assert.Len(t, doc.Payments, 2)
	assert.Len(t, doc.Customers, 3)
	assert.Len(t, doc.Reviews, 3)
	assert.Empty(t, doc.Inquiries)

	units := 0
	for _, g := range doc.Generators {
		units += len(g.Units)
	}
	assert.Equal(t, 8, units)
}
