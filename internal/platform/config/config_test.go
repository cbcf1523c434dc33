package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, LockLocal, cfg.LockBackend)
	assert.Equal(t, 10*time.Second, cfg.LockTTL)
	assert.Equal(t, 3, cfg.AppendMaxAttempts)
	assert.True(t, decimal.RequireFromString("0.20").Equal(cfg.DoctorCommissionRate))
	assert.True(t, decimal.RequireFromString("0.10").Equal(cfg.PharmacyCommissionRate))
	assert.Equal(t, "pharmacy_001", cfg.DefaultPharmacyID)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("STORE_BACKEND", "MONGO")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("LOCK_BACKEND", "redis")
	t.Setenv("LOCK_TTL", "3s")
	t.Setenv("DOCTOR_COMMISSION_RATE", "0.25")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreMongo, cfg.StoreBackend)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, LockRedis, cfg.LockBackend)
	assert.Equal(t, 3*time.Second, cfg.LockTTL)
	assert.True(t, decimal.RequireFromString("0.25").Equal(cfg.DoctorCommissionRate))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown store", map[string]string{"STORE_BACKEND": "cassandra"}},
		{"postgres without url", map[string]string{"STORE_BACKEND": "postgres", "PGSQL_URL": ""}},
		{"unknown lock", map[string]string{"LOCK_BACKEND": "zookeeper"}},
		{"rate not a number", map[string]string{"DOCTOR_COMMISSION_RATE": "twenty"}},
		{"rate out of range", map[string]string{"PHARMACY_COMMISSION_RATE": "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
