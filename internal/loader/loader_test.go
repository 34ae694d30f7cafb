package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racelens/racelens/internal/loader"
)

const sampleJSON = `[
  {"Name": "A", "Team": "X", "Race": "Race 1 - Snowbasin", "RaceNum": 1,
   "Race Category": "Varsity Boys", "Placement": "1", "Total Time": "1:02:30",
   "TotalSeconds": 3750, "Points": 525, "LAP2": 1200, "LAP3": 1250, "LAP4": 1300, "Penalty": null},
  {"Name": "B", "Team": "X", "Race": "Race 1 - Snowbasin", "RaceNum": 1,
   "Race Category": "Varsity Boys", "Placement": "2", "Total Time": "DNF",
   "TotalSeconds": null, "Points": null, "LAP2": null, "LAP3": null, "LAP4": null, "Penalty": null}
]`

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race_data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	entries, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "A", first.Name)
	assert.Equal(t, "Race 1 - Snowbasin", first.Race)
	assert.Equal(t, "Varsity Boys", first.RaceCategory)
	require.NotNil(t, first.TotalSeconds)
	assert.Equal(t, 3750.0, *first.TotalSeconds)
	require.NotNil(t, first.Points)
	assert.Equal(t, 525.0, *first.Points)
	assert.Nil(t, first.Penalty, "null penalty must normalize to absent")

	second := entries[1]
	assert.Nil(t, second.TotalSeconds, "null finish time must normalize to absent, not zero")
	assert.Nil(t, second.Points)
	assert.Nil(t, second.Lap2)
	assert.Equal(t, "DNF", second.TotalTime)
}

func TestLoad_FromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	entries, err := loader.Load(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLoad_URLErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := loader.Load(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"`), 0o644))

	_, err := loader.Load(context.Background(), path)
	assert.Error(t, err)
}

func TestNormalize_PreservesCardinalityAndOrder(t *testing.T) {
	raw := []loader.RawEntry{
		{Name: "C", RaceNum: 3},
		{Name: "A", RaceNum: 1},
		{Name: "B", RaceNum: 2},
	}

	entries := loader.Normalize(raw)
	require.Len(t, entries, 3)
	assert.Equal(t, "C", entries[0].Name)
	assert.Equal(t, "A", entries[1].Name)
	assert.Equal(t, "B", entries[2].Name)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, loader.Normalize(nil))
}
