package update

import (
	"os"
	"path/filepath"
)

// RuntimeConfig carries the knobs the TUI binary reads from the
// environment.
type RuntimeConfig struct {
	// DBPath is the SQLite file. Defaults to trainy.db under the user
	// config directory.
	DBPath string
	// ProxyURL is the base URL of the weather gateway. Empty disables
	// live weather and the app shows fallback reports.
	ProxyURL string
	// Location overrides the saved location for this run.
	Location string
}

// LoadRuntimeConfig reads TRAINY_DB_PATH, TRAINY_PROXY_URL and
// TRAINY_LOCATION.
func LoadRuntimeConfig() RuntimeConfig {
	cfg := RuntimeConfig{
		DBPath:   defaultDBPath(),
		ProxyURL: os.Getenv("TRAINY_PROXY_URL"),
		Location: os.Getenv("TRAINY_LOCATION"),
	}
	if p := os.Getenv("TRAINY_DB_PATH"); p != "" {
		cfg.DBPath = p
	}
	return cfg
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "trainy.db"
	}
	return filepath.Join(dir, "trainy", "trainy.db")
}
