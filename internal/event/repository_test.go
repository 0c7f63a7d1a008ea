package event

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(id, title string) Event {
	return Event{
		ID:          id,
		Title:       title,
		Description: "desc",
		EventDate:   "2099-01-01T10:00:00Z",
		Location:    "Quad",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestFileRepositoryEmptyWhenMissing(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "events.json"))

	events, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFileRepositoryAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	repo := NewFileRepository(path)

	first := testEvent("id-1", "First")
	second := testEvent("id-2", "Second")
	require.NoError(t, repo.Append(first))
	require.NoError(t, repo.Append(second))

	events, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "id-1", events[0].ID)
	assert.Equal(t, "id-2", events[1].ID)
	assert.Equal(t, "First", events[0].Title)

	// The document on disk stays a plain JSON array
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 2)
}

func TestFileRepositoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	repo := NewFileRepository(path)

	// Corrupt document reads as empty instead of failing
	events, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, events)

	// ...and writes keep working afterwards
	require.NoError(t, repo.Append(testEvent("id-1", "Recovered")))
	events, err = repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Recovered", events[0].Title)
}

func TestFileRepositoryConcurrentAppends(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "events.json"))

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Append(testEvent(fmt.Sprintf("id-%d", i), "Race")))
		}(i)
	}
	wg.Wait()

	events, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Len(t, events, n)
}
