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
	// A missing .env file is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, env)
}

// LoadFromReader loads configuration from an in-memory yaml document, applying the same
// defaults and environment overrides as LoadConfig
func LoadFromReader(env string, yaml string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix("RP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads environment variables from the first .env file found
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
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
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.enableSwagger", true)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThresholdMs", 200)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("pool.minimumConversionPoints", 1000)
	v.SetDefault("pool.queueSize", 100)
	v.SetDefault("pool.transactionRetries", 5)

	v.SetDefault("auth.sessionTTL", 60*24) // minutes
	v.SetDefault("auth.issuer", "rewards-pool")

	v.SetDefault("app.referralCodeAttempts", 5)
	v.SetDefault("app.stagedProfileTTL", 30) // minutes

	v.SetDefault("cors.allowedOrigins", []string{"http://localhost:3000"})
}

// getEnvironment determines the environment to use based on RP_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("RP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over configuration file values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"RP_DB_DRIVER":      "database.driver",
		"RP_DB_HOST":        "database.host",
		"RP_DB_PORT":        "database.port",
		"RP_DB_USERNAME":    "database.username",
		"RP_DB_PASSWORD":    "database.password",
		"RP_DB_NAME":        "database.database",
		"RP_DB_SSL_MODE":    "database.sslMode",
		"RP_DB_PATH":        "database.path",
		"RP_REDIS_ADDR":     "redis.addr",
		"RP_REDIS_PASSWORD": "redis.password",
		"RP_SERVER_HOST":    "server.host",
		"RP_SERVER_PORT":    "server.port",
		"RP_LOGGER_LEVEL":   "logger.level",
		"RP_REFERRAL_LINK":  "app.referralLinkBase",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt("RP_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("RP_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("RP_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("RP_DB_RETRY_ATTEMPTS", 0); retryAttempts > 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if queueSize := getEnvInt("RP_POOL_QUEUE_SIZE", 0); queueSize > 0 {
		v.Set("pool.queueSize", queueSize)
	}
	if retries := getEnvInt("RP_POOL_TRANSACTION_RETRIES", 0); retries > 0 {
		v.Set("pool.transactionRetries", retries)
	}
	if origins := os.Getenv("RP_CORS_ALLOWED_ORIGINS"); origins != "" {
		v.Set("cors.allowedOrigins", strings.Split(origins, ","))
	}
}

// getEnvInt returns an environment variable as int
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

// processDurations converts time.Duration fields from their raw unit counts to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.SessionTTL = time.Duration(config.Auth.SessionTTL) * time.Minute
	config.App.StagedProfileTTL = time.Duration(config.App.StagedProfileTTL) * time.Minute
}
