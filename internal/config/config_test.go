package config_test

import (
	"testing"

	"github.com/bxgeo/portalmigrate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOURCE_PORTAL_URL", "https://src.example.com")
	t.Setenv("TARGET_PORTAL_URL", "https://dst.example.com")

	cfg := config.Load()
	assert.Equal(t, "https://src.example.com", cfg.Source.URL)
	assert.Equal(t, "source", cfg.Source.Name)
	assert.Equal(t, "target", cfg.Target.Name)
	assert.Equal(t, "data", cfg.DataRoot)
}

func TestLoadCommonTags(t *testing.T) {
	t.Setenv("COMMON_TAGS", "migrated,gis")

	cfg := config.Load()
	assert.Equal(t, []string{"migrated", "gis"}, cfg.CommonTags)
}

func TestValidateRejectsIncompleteConfig(t *testing.T) {
	cfg := config.Load()
	assert.Error(t, cfg.Validate())
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	t.Setenv("SOURCE_PORTAL_URL", "https://src.example.com")
	t.Setenv("SOURCE_PORTAL_USERNAME", "admin")
	t.Setenv("SOURCE_PORTAL_PASSWORD", "secret")
	t.Setenv("TARGET_PORTAL_URL", "https://dst.example.com")
	t.Setenv("TARGET_PORTAL_USERNAME", "admin")
	t.Setenv("TARGET_PORTAL_PASSWORD", "secret")
	t.Setenv("MIGRATION_ADMIN_USERNAME", "migration_admin")

	cfg := config.Load()
	require.NoError(t, cfg.Validate())
}
