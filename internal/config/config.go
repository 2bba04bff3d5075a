package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir    string // base data directory, ex: "data"
	ConfigFile string // path to the dashboard config document
	IconsDir   string // path to the uploaded icons directory

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)
}

// Load builds the configuration from environment variables, with an
// optional .env file loaded first. The document and icons paths are
// explicit values injected into the store and the asset manager; no
// component resolves paths from ambient process state.
func Load() *Config {
	// Best-effort: a missing .env simply means plain env vars.
	_ = godotenv.Load()

	dataDir := getenv("CRAPDASH_DATA_DIR", "data")

	return &Config{
		DataDir:    dataDir,
		ConfigFile: getenv("CRAPDASH_CONFIG_FILE", filepath.Join(dataDir, "config.json")),
		IconsDir:   getenv("CRAPDASH_ICONS_DIR", filepath.Join(dataDir, "icons")),

		LogLevel:  getenv("CRAPDASH_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CRAPDASH_PRETTY_LOG", true),
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
