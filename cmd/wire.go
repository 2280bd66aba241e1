package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurtMcGurt64/owlplanner/internal/adapters/api"
	catalogtoml "github.com/BurtMcGurt64/owlplanner/internal/adapters/catalog/toml"
	"github.com/BurtMcGurt64/owlplanner/internal/ports"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultBaseURL = "http://localhost:8000"

type app struct {
	api     ports.SchedulerAPI
	catalog ports.CatalogCache
	clock   ports.Clock
	logger  *zap.Logger
}

func wireApp() (*app, error) {
	// A .env next to the binary is a convenience for local development;
	// absence is not an error.
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	if configDir, err := os.UserConfigDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(configDir, "owlplanner"))
	}
	cfg.SetEnvPrefix("OWLPLANNER")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault("api.base_url", defaultBaseURL)
	cfg.SetDefault("debug.log", "")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	logger, err := newLogger(cfg.GetString("debug.log"))
	if err != nil {
		return nil, fmt.Errorf("wire debug logger: %w", err)
	}

	catalog, err := catalogtoml.NewCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire catalog cache: %w", err)
	}

	return &app{
		api: &api.Client{
			BaseURL:    cfg.GetString("api.base_url"),
			HTTPClient: http.DefaultClient,
			Logger:     logger,
		},
		catalog: catalog,
		clock:   ports.SystemClock{},
		logger:  logger,
	}, nil
}

// newLogger writes structured debug logs to a file when configured; the
// terminal belongs to the TUI, so there is no console sink.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}
	return zapCfg.Build()
}
