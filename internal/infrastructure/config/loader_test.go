package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigFile = "../../../configs/test.yaml"

func TestLoadFromFile(t *testing.T) {
	cfg, err := LoadFromFile(testConfigFile)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout, "defaults fill missing keys")
	assert.Equal(t, 5, cfg.Lock.Tries)
	assert.Equal(t, 5*time.Second, cfg.Lock.Timeout())
	assert.Equal(t, 10*time.Millisecond, cfg.Lock.RetryInterval())
	assert.Equal(t, time.Second, cfg.Lock.RenewInterval())
	assert.Equal(t, 2*time.Second, cfg.Payment.DispatchTimeout())
	assert.Equal(t, 8, cfg.Payment.DispatchPoolSize)
	assert.Equal(t, []int{1, 1, 1}, cfg.Retry.PaymentFailureRetryDays)
	assert.Equal(t, 5*time.Minute, cfg.Retry.PluginFailureSeed())
	assert.Equal(t, time.Second, cfg.Notification.PollInterval())
	assert.Equal(t, 30*time.Second, cfg.Notification.Lease())
	assert.True(t, cfg.Plugins.EnableScripted)
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	t.Setenv("PE_SERVER_PORT", "9090")
	t.Setenv("PE_REDIS_ADDR", "redis:6379")
	t.Setenv("PE_LOCK_TRIES", "3")

	cfg, err := LoadFromFile(testConfigFile)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Lock.Tries)
}

func TestLoadDefaults(t *testing.T) {
	t.Run("Defaults are valid", func(t *testing.T) {
		cfg, err := LoadDefaults()
		require.NoError(t, err)

		assert.Equal(t, Development, cfg.Environment)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, []int{8, 8, 8}, cfg.Retry.PaymentFailureRetryDays)
		assert.Equal(t, time.Minute, cfg.Payment.JanitorInterval())
	})

	t.Run("Environment name is read from PE_ENV", func(t *testing.T) {
		t.Setenv("PE_ENV", "TEST")

		cfg, err := LoadDefaults()
		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
	})

	t.Run("Unsupported driver is rejected", func(t *testing.T) {
		t.Setenv("PE_DB_DRIVER", "mysql")

		cfg, err := LoadDefaults()
		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "unsupported database driver")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:       ServerConfig{Port: 8080},
			Database:     DatabaseConfig{Driver: DriverMemory},
			Lock:         LockConfig{Tries: 1, TimeoutMs: 3000, RenewIntervalMs: 1000},
			Payment:      PaymentConfig{DispatchPoolSize: 1, DispatchTimeoutMs: 1},
			Notification: NotificationConfig{BatchSize: 1},
			Retry:        RetryConfig{PaymentFailureRetryDays: []int{1}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "invalid server port"},
		{name: "empty pool", mutate: func(c *Config) { c.Payment.DispatchPoolSize = 0 }, wantErr: "pool size"},
		{name: "no dispatch timeout", mutate: func(c *Config) { c.Payment.DispatchTimeoutMs = 0 }, wantErr: "dispatch timeout"},
		{name: "no lock tries", mutate: func(c *Config) { c.Lock.Tries = 0 }, wantErr: "lock tries"},
		{name: "no lock timeout", mutate: func(c *Config) { c.Lock.TimeoutMs = 0 }, wantErr: "lock timeout"},
		{name: "renewal slower than the lease", mutate: func(c *Config) { c.Lock.RenewIntervalMs = 3000 }, wantErr: "renew interval"},
		{name: "empty batch", mutate: func(c *Config) { c.Notification.BatchSize = 0 }, wantErr: "batch size"},
		{name: "zero retry day", mutate: func(c *Config) { c.Retry.PaymentFailureRetryDays = []int{1, 0} }, wantErr: "retry days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := c.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
