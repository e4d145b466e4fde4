package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Pool        PoolConfig     `mapstructure:"pool"`
	Auth        AuthConfig     `mapstructure:"auth"`
	App         AppConfig      `mapstructure:"app"`
	CORS        CORSConfig     `mapstructure:"cors"`
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
	EnableSwagger     bool          `mapstructure:"enableSwagger"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Path            string        `mapstructure:"path"` // sqlite only
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThresholdMs"` // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// RedisConfig contains the scratch store settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// PoolConfig contains conversion pool settings
type PoolConfig struct {
	MinimumConversionPoints int64 `mapstructure:"minimumConversionPoints"`
	QueueSize               int   `mapstructure:"queueSize"`
	TransactionRetries      int   `mapstructure:"transactionRetries"` // reruns after a conflicting first attempt
}

// AuthConfig contains session settings. Signing keys are read from the environment only.
type AuthConfig struct {
	SessionTTL        time.Duration `mapstructure:"sessionTTL"` // minutes
	Issuer            string        `mapstructure:"issuer"`
	FederatedIssuer   string        `mapstructure:"federatedIssuer"`
	FederatedAudience string        `mapstructure:"federatedAudience"`
}

// AppConfig contains product settings
type AppConfig struct {
	ReferralLinkBase     string        `mapstructure:"referralLinkBase"`
	ReferralCodeAttempts int           `mapstructure:"referralCodeAttempts"`
	StagedProfileTTL     time.Duration `mapstructure:"stagedProfileTTL"` // minutes
}

// CORSConfig contains cross-origin settings for the browser client
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}
