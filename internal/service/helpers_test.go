package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rentalhq-backend/internal/repository/jsonfile"
	"rentalhq-backend/internal/storage"
)

// newSeededStore backs the service tests with a real document store over a
// throwaway file, seeded with the demo catalog (M001 has two available
// units at 500/day).
func newSeededStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	snap := storage.NewSnapshot(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, snap.Save(storage.SeedDocument(time.Now())))
	return jsonfile.NewStore(snap)
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
