package env

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/DjordjeVuckovic/irprep/pkg/stringsutil"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH, a comma separated list, replaces the default paths when set.
// Missing files are only an error in local mode; variables already present
// in the environment win.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if p := stringsutil.SplitNoEmpty(os.Getenv("ENV_PATH"), ","); len(p) > 0 {
		paths = p
	} else {
		slog.Debug("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		if env == "local" {
			slog.Error("No .env file found in local mode", "paths", paths)
			return os.ErrNotExist
		}
		slog.Debug("Skipping .env ...", "paths", paths)
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		if env == "local" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "error", err)
	}

	return nil
}

// String returns the value of key or def when it is unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Int returns the integer value of key, or def when it is unset or unparsable.
func Int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring non-integer environment value", "key", key, "value", v)
		return def
	}
	return n
}
