package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/focuscoach/internal/db"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/alexanderramin/focuscoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB opens a file-backed database; unlike :memory: it is
// shared by every connection in the pool.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite checks that listing sessions while
// another goroutine records them never sees a half-written row.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	clk := testutil.NewTestClock()
	repo := NewSQLiteSessionRepo(database, clk)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			s := testutil.NewTestSession(domain.TechniquePomodoro, clk,
				testutil.WithCreatedAt(testutil.Epoch.Add(time.Duration(i)*time.Minute)))
			if err := repo.Create(ctx, s); err != nil {
				t.Errorf("writer: create session %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				list, err := repo.ListRecent(ctx, testutil.Epoch)
				if err != nil {
					t.Errorf("reader %d: list recent: %v", reader, err)
					return
				}
				for _, s := range list {
					if s.ID == "" || s.Technique == "" {
						t.Errorf("reader %d: incomplete session %+v", reader, s)
						return
					}
				}
			}
		}(r)
	}

	wg.Wait()

	list, err := repo.ListRecent(ctx, testutil.Epoch)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
