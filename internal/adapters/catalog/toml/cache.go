// Package toml persists the fetched course catalog so browsing works
// without waking a cold backend. Only server data is cached here, never
// anything the user entered.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	"github.com/BurtMcGurt64/owlplanner/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	catalogPathKey  = "catalog.path"
	catalogFileMode = 0o600
	catalogDirMode  = 0o700
	catalogDir      = "owlplanner"
	catalogFile     = "catalog.toml"
	tempFilePattern = ".catalog-*.toml.tmp"
)

type Cache struct {
	catalogPath string
}

var _ ports.CatalogCache = (*Cache)(nil)

type fileSchema struct {
	FetchedAt time.Time `toml:"fetched_at"`
	Courses   []string  `toml:"courses"`
}

// NewCache resolves the catalog path from configuration, defaulting to the
// user cache directory.
func NewCache(cfg *viper.Viper) (*Cache, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user cache directory: %w", err)
	}
	cfg.SetDefault(catalogPathKey, filepath.Join(cacheDir, catalogDir, catalogFile))

	catalogPath := cfg.GetString(catalogPathKey)
	if catalogPath == "" {
		return nil, errors.New("catalog path is empty")
	}
	catalogPath, err = filepath.Abs(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	return &Cache{catalogPath: filepath.Clean(catalogPath)}, nil
}

func (c *Cache) Load(ctx context.Context) ([]string, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, time.Time{}, err
	}

	data, err := os.ReadFile(c.catalogPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, time.Time{}, domain.ErrCatalogNotCached
		}
		return nil, time.Time{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode catalog file: %w", err)
	}

	return file.Courses, file.FetchedAt, nil
}

func (c *Cache) Save(ctx context.Context, courses []string, fetchedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.catalogPath), catalogDirMode); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	data, err := toml.Marshal(fileSchema{FetchedAt: fetchedAt, Courses: courses})
	if err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(c.catalogPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}
	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp catalog file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}

	if err := os.Rename(tempName, c.catalogPath); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}
	cleanup = false

	return nil
}
