package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Lock         LockConfig         `mapstructure:"lock"`
	Payment      PaymentConfig      `mapstructure:"payment"`
	Retry        RetryConfig        `mapstructure:"retry"`
	Notification NotificationConfig `mapstructure:"notification"`
	Plugins      PluginsConfig      `mapstructure:"plugins"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
// Driver "memory" runs the engine on the in-process stores
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// RedisConfig contains the settings of the Redis account lock
type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// LockConfig contains the per-account lock settings
type LockConfig struct {
	TimeoutMs       int64 `mapstructure:"timeoutMs"`
	Tries           int   `mapstructure:"tries"`
	RetryIntervalMs int64 `mapstructure:"retryIntervalMs"`
	MaxIntervalMs   int64 `mapstructure:"maxIntervalMs"`
	RenewIntervalMs int64 `mapstructure:"renewIntervalMs"`
}

// PaymentConfig contains payment processing settings
type PaymentConfig struct {
	DispatchPoolSize    int   `mapstructure:"dispatchPoolSize"`
	DispatchTimeoutMs   int64 `mapstructure:"dispatchTimeoutMs"`
	JanitorIntervalSec  int   `mapstructure:"janitorIntervalSec"`
	JanitorThresholdSec int   `mapstructure:"janitorThresholdSec"`
	JanitorBatchSize    int   `mapstructure:"janitorBatchSize"`
}

// RetryConfig contains the settings of the invoice retry policy
type RetryConfig struct {
	PluginFailureSeedSec     int   `mapstructure:"pluginFailureSeedSec"`
	PluginFailureMultiplier  int   `mapstructure:"pluginFailureMultiplier"`
	PluginFailureMaxAttempts int   `mapstructure:"pluginFailureMaxAttempts"`
	PaymentFailureRetryDays  []int `mapstructure:"paymentFailureRetryDays"`
}

// NotificationConfig contains the notification queue poller settings
type NotificationConfig struct {
	PollIntervalSec int `mapstructure:"pollIntervalSec"`
	BatchSize       int `mapstructure:"batchSize"`
	LeaseSec        int `mapstructure:"leaseSec"`
	MaxErrors       int `mapstructure:"maxErrors"`
	RetryBackoffSec int `mapstructure:"retryBackoffSec"`
	Workers         int `mapstructure:"workers"`
}

// PluginsConfig contains the built-in payment plugin settings
type PluginsConfig struct {
	EnableScripted        bool   `mapstructure:"enableScripted"`
	ScriptedDefaultStatus string `mapstructure:"scriptedDefaultStatus"`
}
