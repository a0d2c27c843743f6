package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PE"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	return load(v, env, true)
}

// LoadFromFile loads configuration from an explicit YAML file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, getEnvironment(), true)
}

// LoadDefaults builds a configuration from defaults and environment overrides only
func LoadDefaults() (*Config, error) {
	return load(viper.New(), getEnvironment(), false)
}

func load(v *viper.Viper, env string, readFile bool) (*Config, error) {
	setDefaults(v)

	if readFile {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds, covers a plugin call
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.keyPrefix", "payment-engine:account-lock:")

	v.SetDefault("lock.timeoutMs", 30000)
	v.SetDefault("lock.tries", 10)
	v.SetDefault("lock.retryIntervalMs", 50)
	v.SetDefault("lock.maxIntervalMs", 1000)
	v.SetDefault("lock.renewIntervalMs", 10000)

	v.SetDefault("payment.dispatchPoolSize", 100)
	v.SetDefault("payment.dispatchTimeoutMs", 30000)
	v.SetDefault("payment.janitorIntervalSec", 60)
	v.SetDefault("payment.janitorThresholdSec", 300)
	v.SetDefault("payment.janitorBatchSize", 100)

	v.SetDefault("retry.pluginFailureSeedSec", 300)
	v.SetDefault("retry.pluginFailureMultiplier", 2)
	v.SetDefault("retry.pluginFailureMaxAttempts", 3)
	v.SetDefault("retry.paymentFailureRetryDays", []int{8, 8, 8})

	v.SetDefault("notification.pollIntervalSec", 5)
	v.SetDefault("notification.batchSize", 50)
	v.SetDefault("notification.leaseSec", 300)
	v.SetDefault("notification.maxErrors", 5)
	v.SetDefault("notification.retryBackoffSec", 60)
	v.SetDefault("notification.workers", 4)

	v.SetDefault("plugins.enableScripted", false)
	v.SetDefault("plugins.scriptedDefaultStatus", "SUCCESS")
}

// getEnvironment determines the environment to use based on PE_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes the short environment names win over file values
func processEnvOverrides(v *viper.Viper) {
	if dbDriver := os.Getenv("PE_DB_DRIVER"); dbDriver != "" {
		v.Set("database.driver", dbDriver)
	}
	if dbHost := os.Getenv("PE_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := os.Getenv("PE_DB_PORT"); dbPort != "" {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("PE_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("PE_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("PE_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if sslMode := os.Getenv("PE_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}
	if maxOpenConns := getEnvInt("PE_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("PE_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}

	if serverHost := os.Getenv("PE_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := getEnvInt("PE_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}

	if logLevel := os.Getenv("PE_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	if redisAddr := os.Getenv("PE_REDIS_ADDR"); redisAddr != "" {
		v.Set("redis.addr", redisAddr)
		v.Set("redis.enabled", true)
	}
	if redisPass := os.Getenv("PE_REDIS_PASSWORD"); redisPass != "" {
		v.Set("redis.password", redisPass)
	}

	if poolSize := getEnvInt("PE_PAYMENT_DISPATCH_POOL_SIZE", 0); poolSize > 0 {
		v.Set("payment.dispatchPoolSize", poolSize)
	}
	if timeout := getEnvInt("PE_PAYMENT_DISPATCH_TIMEOUT_MS", 0); timeout > 0 {
		v.Set("payment.dispatchTimeoutMs", timeout)
	}
	if lockTimeout := getEnvInt("PE_LOCK_TIMEOUT_MS", 0); lockTimeout > 0 {
		v.Set("lock.timeoutMs", lockTimeout)
	}
	if tries := getEnvInt("PE_LOCK_TRIES", 0); tries > 0 {
		v.Set("lock.tries", tries)
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}

// Validate checks the settings the engine cannot start without
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Payment.DispatchPoolSize <= 0 {
		return fmt.Errorf("payment dispatch pool size must be positive, got: %d", c.Payment.DispatchPoolSize)
	}
	if c.Payment.DispatchTimeoutMs <= 0 {
		return fmt.Errorf("payment dispatch timeout must be positive, got: %d", c.Payment.DispatchTimeoutMs)
	}
	if c.Lock.Tries <= 0 {
		return fmt.Errorf("lock tries must be positive, got: %d", c.Lock.Tries)
	}
	if c.Lock.TimeoutMs <= 0 {
		return fmt.Errorf("lock timeout must be positive, got: %d", c.Lock.TimeoutMs)
	}
	if c.Lock.RenewIntervalMs <= 0 || c.Lock.RenewIntervalMs >= c.Lock.TimeoutMs {
		return fmt.Errorf("lock renew interval must be positive and below the lock timeout (%dms), got: %d",
			c.Lock.TimeoutMs, c.Lock.RenewIntervalMs)
	}
	if c.Notification.BatchSize <= 0 {
		return fmt.Errorf("notification batch size must be positive, got: %d", c.Notification.BatchSize)
	}
	for _, days := range c.Retry.PaymentFailureRetryDays {
		if days <= 0 {
			return fmt.Errorf("payment failure retry days must be positive, got: %v", c.Retry.PaymentFailureRetryDays)
		}
	}
	return nil
}

// DispatchTimeout returns the plugin call deadline
func (c PaymentConfig) DispatchTimeout() time.Duration {
	return time.Duration(c.DispatchTimeoutMs) * time.Millisecond
}

// JanitorInterval returns the delay between two UNKNOWN sweeps
func (c PaymentConfig) JanitorInterval() time.Duration {
	return time.Duration(c.JanitorIntervalSec) * time.Second
}

// JanitorThreshold returns the minimum age of a swept transaction
func (c PaymentConfig) JanitorThreshold() time.Duration {
	return time.Duration(c.JanitorThresholdSec) * time.Second
}

// Timeout returns the lock lease
func (c LockConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// RetryInterval returns the first wait between two lock tries
func (c LockConfig) RetryInterval() time.Duration {
	return time.Duration(c.RetryIntervalMs) * time.Millisecond
}

// MaxInterval returns the longest wait between two lock tries
func (c LockConfig) MaxInterval() time.Duration {
	return time.Duration(c.MaxIntervalMs) * time.Millisecond
}

// RenewInterval returns the period of the lease renewal while a lock is held
func (c LockConfig) RenewInterval() time.Duration {
	return time.Duration(c.RenewIntervalMs) * time.Millisecond
}

// PluginFailureSeed returns the first delay after a plugin failure
func (c RetryConfig) PluginFailureSeed() time.Duration {
	return time.Duration(c.PluginFailureSeedSec) * time.Second
}

// PollInterval returns the delay between two queue polls
func (c NotificationConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSec) * time.Second
}

// Lease returns how long a claimed notification stays hidden
func (c NotificationConfig) Lease() time.Duration {
	return time.Duration(c.LeaseSec) * time.Second
}

// RetryBackoff returns the first redelivery delay of a failed notification
func (c NotificationConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffSec) * time.Second
}
