// Package loader performs the one-shot dataset load: fetch the raw season
// results from a local file or an HTTP URL, then normalize them into the
// canonical entry shape. The load happens once at startup; a failure
// degrades to an empty dataset rather than a crash.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/racelens/racelens/internal/logger"
	"github.com/racelens/racelens/internal/models"
)

// RawEntry mirrors one record of the source dataset. Optional numeric
// columns are pointers so JSON null decodes as nil instead of zero.
type RawEntry struct {
	Name         string   `json:"Name"`
	Team         string   `json:"Team"`
	Race         string   `json:"Race"`
	RaceNum      int      `json:"RaceNum"`
	RaceCategory string   `json:"Race Category"`
	Placement    string   `json:"Placement"`
	TotalTime    string   `json:"Total Time"`
	TotalSeconds *float64 `json:"TotalSeconds"`
	Points       *float64 `json:"Points"`
	Lap2         *float64 `json:"LAP2"`
	Lap3         *float64 `json:"LAP3"`
	Lap4         *float64 `json:"LAP4"`
	Penalty      *float64 `json:"Penalty"`
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load fetches and normalizes the dataset from source, which is either a
// filesystem path or an http(s) URL.
func Load(ctx context.Context, source string) ([]models.RaceEntry, error) {
	raw, err := Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}

// Fetch reads the raw records from source without normalizing them.
func Fetch(ctx context.Context, source string) ([]RawEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("loader")

	var body []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetchURL(ctx, source)
	} else {
		log.Debug("reading dataset file: %s", source)
		body, err = os.ReadFile(source)
	}
	if err != nil {
		log.Error("failed to fetch dataset: %v", err)
		return nil, err
	}

	var raw []RawEntry
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Error("failed to parse dataset: %v", err)
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	log.Info("fetched %d raw entries from %s", len(raw), source)
	return raw, nil
}

func fetchURL(ctx context.Context, url string) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("loader")

	log.Debug("fetching dataset from: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug("dataset response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("dataset fetch status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// Normalize converts raw records into canonical entries, preserving
// cardinality and order. Absent optional fields stay nil so downstream
// arithmetic skips them instead of treating them as zero.
func Normalize(raw []RawEntry) []models.RaceEntry {
	entries := make([]models.RaceEntry, len(raw))
	for i, r := range raw {
		entries[i] = models.RaceEntry{
			Name:         r.Name,
			Team:         r.Team,
			Race:         r.Race,
			RaceNum:      r.RaceNum,
			RaceCategory: r.RaceCategory,
			Placement:    r.Placement,
			TotalTime:    r.TotalTime,
			TotalSeconds: r.TotalSeconds,
			Points:       r.Points,
			Lap2:         r.Lap2,
			Lap3:         r.Lap3,
			Lap4:         r.Lap4,
			Penalty:      r.Penalty,
		}
	}
	return entries
}
