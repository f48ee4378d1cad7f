package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("SLOT_MINUTES", "")
	t.Setenv("PLATFORM_FEE_PERCENT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendDocument, cfg.StoreBackend)
	assert.Equal(t, 30, cfg.SlotMinutes)
	assert.Equal(t, 10.0, cfg.PlatformFeePercent)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsOddSlotSize(t *testing.T) {
	t.Setenv("SLOT_MINUTES", "20")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ParsesLists(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("STORE_BACKEND", "KV")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, BackendKV, cfg.StoreBackend)
}
