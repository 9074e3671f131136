package config

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Log is the process-wide logger, set by Init.
var Log *zap.Logger

// Settings holds everything the storefront reads from the environment.
// Every value has a local default so the binary runs with no .env at all.
type Settings struct {
	Addr         string // listen address for the storefront API
	DataDir      string // device-local storage directory
	WishlistPath string // JSON file backing the wishlist (one key, one array)
	SharePhone   string // WhatsApp number for outbound share links
	BaseURL      string // origin used when building product permalinks
}

// App is the active configuration, set by Init.
var App Settings

func Init() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Log = logger

	dataDir := getEnv("AZHARI_DATA_DIR", defaultDataDir())
	App = Settings{
		Addr:         getEnv("AZHARI_ADDR", ":8081"),
		DataDir:      dataDir,
		WishlistPath: filepath.Join(dataDir, "wishlist.json"),
		SharePhone:   getEnv("AZHARI_SHARE_PHONE", "+919979219073"),
		BaseURL:      getEnv("AZHARI_BASE_URL", "http://localhost:8081"),
	}

	if err := os.MkdirAll(App.DataDir, 0o755); err != nil {
		return err
	}
	return nil
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "azhari-attar")
	}
	return ".azhari-attar"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
