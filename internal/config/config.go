package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Tx       TxConfig       `yaml:"tx"`
	Usage    UsageConfig    `yaml:"usage"`
	Content  ContentConfig  `yaml:"content"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// TxConfig bounds every write transaction.
type TxConfig struct {
	Timeout        time.Duration `yaml:"timeout"          env:"TX_TIMEOUT"          env-default:"5s"`
	LockTimeout    time.Duration `yaml:"lock_timeout"     env:"TX_LOCK_TIMEOUT"     env-default:"2s"`
	MaxRetries     uint64        `yaml:"max_retries"      env:"TX_MAX_RETRIES"      env-default:"3"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" env:"TX_RETRY_BASE_DELAY" env-default:"20ms"`
}

// UsageConfig holds usage accounting settings.
type UsageConfig struct {
	// DailyTokenLimit caps total tokens per model per UTC day. 0 disables the check.
	DailyTokenLimit int64  `yaml:"daily_token_limit" env:"USAGE_DAILY_TOKEN_LIMIT" env-default:"10000000"`
	DefaultApp      string `yaml:"default_app"       env:"USAGE_DEFAULT_APP"       env-default:"waxworks"`
}

// ContentConfig holds content pipeline settings.
type ContentConfig struct {
	MaxListLimit     int `yaml:"max_list_limit"     env:"CONTENT_MAX_LIST_LIMIT"     env-default:"500"`
	DefaultListLimit int `yaml:"default_list_limit" env:"CONTENT_DEFAULT_LIST_LIMIT" env-default:"50"`
}

// MetricsConfig configures the OpenTelemetry meter provider.
type MetricsConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"METRICS_ENABLED"      env-default:"false"`
	Endpoint    string        `yaml:"endpoint"     env:"METRICS_ENDPOINT"`
	Interval    time.Duration `yaml:"interval"     env:"METRICS_INTERVAL"     env-default:"10s"`
	ServiceName string        `yaml:"service_name" env:"METRICS_SERVICE_NAME" env-default:"waxworks"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
