package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is the backend base URL used when nothing else is configured.
const DefaultAPIURL = "http://localhost:8000"

// Config holds the resolved client configuration.
type Config struct {
	APIURL   string
	StateDir string
}

// LoadConfig resolves configuration from, in order of precedence: explicit
// flag values, JBI_* environment variables (a .env file in the working
// directory is loaded first if present), and built-in defaults.
func LoadConfig(apiFlag, stateFlag string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		LogDebug("no .env loaded: %v", err)
	}

	cfg := &Config{
		APIURL:   DefaultAPIURL,
		StateDir: "",
	}

	if v := os.Getenv("JBI_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if apiFlag != "" {
		cfg.APIURL = apiFlag
	}

	if v := os.Getenv("JBI_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if stateFlag != "" {
		cfg.StateDir = stateFlag
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".jbi")
	}

	return cfg, nil
}
