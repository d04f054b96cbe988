package docstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	CGPA float64 `json:"cgpa"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	want := []record{
		{ID: "S1", Name: "Asha", CGPA: 8.5},
		{ID: "S2", Name: "Ravi", CGPA: 6.75},
	}
	require.NoError(t, store.Save(CollectionStudents, want))

	got, err := Load[record](store, CollectionStudents)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadAbsentFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	got, err := Load[record](store, CollectionQueries)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.WriteFile(store.Path(CollectionStudents), []byte("{not json"), 0o644))

	got, err := Load[record](store, CollectionStudents)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadSkipsUndecodableRecords(t *testing.T) {
	store := newTestStore(t)

	doc := `[{"id": "S1", "name": "Asha", "cgpa": 8.5}, {"id": "S2", "cgpa": {"bad": true}}]`
	require.NoError(t, os.WriteFile(store.Path(CollectionStudents), []byte(doc), 0o644))

	got, err := Load[record](store, CollectionStudents)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "S1", got[0].ID)
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	store := newTestStore(t)

	var none []record
	require.NoError(t, store.Save(CollectionCompanies, none))

	data, err := os.ReadFile(store.Path(CollectionCompanies))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(CollectionStudents, []record{{ID: "S1"}}))

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(entry.Name()))
	}
}

func TestSaveIndentationMatchesLegacyFormat(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(CollectionStudents, []record{{ID: "S1", Name: "Asha", CGPA: 8.5}}))

	data, err := os.ReadFile(store.Path(CollectionStudents))
	require.NoError(t, err)

	var want []record
	require.NoError(t, json.Unmarshal(data, &want))
	assert.Contains(t, string(data), "\n    {")
}
