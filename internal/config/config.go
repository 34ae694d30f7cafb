package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DBPath            string
	DataSource        string
	CategoryOrderPath string
	SeasonLabel       string
	LogLevel          string
	MinTeamEntries    int
	RivalTeams        []string
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:              envOr("ADDR", ":8080"),
		DBPath:            envOr("DB_PATH", "file:racelens.db"),
		DataSource:        envOr("DATA_SOURCE", "race_data.json"),
		CategoryOrderPath: envOr("CATEGORY_ORDER_PATH", ""),
		SeasonLabel:       envOr("SEASON_LABEL", "2025 Region 5 Racing Season"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		MinTeamEntries:    envIntOr("MIN_TEAM_ENTRIES", 20),
		RivalTeams:        envListOr("RIVAL_TEAMS", []string{"Maple Mountain", "Salem Hills", "Payson", "Spanish Fork", "Springville"}),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
