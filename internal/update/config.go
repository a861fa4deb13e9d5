package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/tasklist/internal/model"
)

// RuntimeConfig holds process settings. CharLimit 0 means task text is
// not length limited.
type RuntimeConfig struct {
	AltScreen bool
	LogFile   string
	IDMode    model.IDMode
	CharLimit int
	Clipboard bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		AltScreen: false,
		LogFile:   "",
		IDMode:    model.IDModeUUID,
		CharLimit: 0,
		Clipboard: true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("TASKLIST_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if raw := os.Getenv("TASKLIST_ID_MODE"); strings.TrimSpace(raw) != "" {
		if mode, err := model.ParseIDMode(raw); err == nil {
			cfg.IDMode = mode
		}
	}
	if v, ok := getEnvInt("TASKLIST_CHAR_LIMIT"); ok && v >= 0 {
		cfg.CharLimit = v
	}
	if v, ok := getEnvBool("TASKLIST_CLIPBOARD"); ok {
		cfg.Clipboard = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
