// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// PortalConfig identifies and authenticates one portal organization.
type PortalConfig struct {
	// URL is the portal base URL, e.g. https://example.maps.arcgis.com
	URL string `json:"url" validate:"required,url"`
	// Username is case sensitive.
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Name is the organization's label; snapshots live under
	// <data_root>/<name>.
	Name string `json:"name" validate:"required"`
}

type Config struct {
	Source PortalConfig `json:"source"`
	Target PortalConfig `json:"target"`

	// DataRoot is the directory holding per-organization snapshot
	// directories.
	DataRoot string `json:"data_root" validate:"required"`

	// MigrationAdmin is the account that creates migrated groups on the
	// target before ownership reassignment.
	MigrationAdmin string `json:"migration_admin" validate:"required"`

	// AnalysisFolder, when set, is created on each portal and used as the
	// default container for uploaded items.
	AnalysisFolder string `json:"analysis_folder"`

	// CommonTags are merged into the tags of every uploaded item.
	CommonTags []string `json:"common_tags"`

	// RequestTimeout bounds individual portal API calls.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// Load populates a Config from the environment.
func Load() *Config {
	cfg := &Config{}

	cfg.Source.URL = getEnv("SOURCE_PORTAL_URL", "")
	cfg.Source.Username = getEnv("SOURCE_PORTAL_USERNAME", "")
	cfg.Source.Password = getEnv("SOURCE_PORTAL_PASSWORD", "")
	cfg.Source.Name = getEnv("SOURCE_PORTAL_NAME", "source")

	cfg.Target.URL = getEnv("TARGET_PORTAL_URL", "")
	cfg.Target.Username = getEnv("TARGET_PORTAL_USERNAME", "")
	cfg.Target.Password = getEnv("TARGET_PORTAL_PASSWORD", "")
	cfg.Target.Name = getEnv("TARGET_PORTAL_NAME", "target")

	cfg.DataRoot = getEnv("DATA_ROOT", "data")
	cfg.MigrationAdmin = getEnv("MIGRATION_ADMIN_USERNAME", "")
	cfg.AnalysisFolder = getEnv("ANALYSIS_FOLDER", "")
	if tags := getEnv("COMMON_TAGS", ""); tags != "" {
		cfg.CommonTags = strings.Split(tags, ",")
	}
	cfg.RequestTimeout = 30 * time.Second

	return cfg
}

// Validate reports missing or malformed configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
