// Package config loads the emotion engine configuration from YAML with
// environment variable overrides.
package config

import (
	"time"

	"github.com/in-tuned/emotion-engine/internal/logging"
)

// Default configuration values.
const (
	defaultServiceName       = "emotion-engine"
	defaultServiceVersion    = "1.0.0"
	defaultServicePort       = 8080
	defaultMaxInputChars     = 20000
	defaultDefaultLanguage   = "en"
	defaultDefaultRegion     = "US"
	defaultDBHost            = "localhost"
	defaultDBPort            = 5432
	defaultDBUser            = "postgres"
	defaultDBName            = "emotion"
	defaultDBSSLMode         = "disable"
	defaultDBMaxConns        = 25
	defaultDBMaxIdleConns    = 5
	defaultRedisAddr         = "localhost:6379"
	defaultRedisTimeoutSec   = 5
	defaultExpansionTTLHours = 24
	defaultExpansionTimeout  = 8 * time.Second
	defaultExpansionRate     = 2.0
	defaultExpansionBurst    = 4
	defaultFreeDictURL       = "https://api.dictionaryapi.dev/api/v2/entries"
	defaultUrbanURL          = "https://api.urbandictionary.com/v0/define"
)

// Config holds all configuration for the emotion engine service.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Safety    SafetyConfig    `yaml:"safety"`
	Expansion ExpansionConfig `yaml:"expansion"`
	Logging   logging.Config  `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"EMOTION_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"    yaml:"debug"`
}

// DatabaseConfig holds Postgres configuration for the lexicon store.
type DatabaseConfig struct {
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// RedisConfig holds the optional Redis cache configuration. When Enabled is
// false the expansion service falls back to an in-process cache.
type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED"  yaml:"enabled"`
	Addr     string        `env:"REDIS_ADDR"     yaml:"addr"`
	Password string        `env:"REDIS_PASSWORD" yaml:"password"`
	Database int           `yaml:"database"`
	Timeout  time.Duration `yaml:"timeout"`
}

// AnalysisConfig holds analysis input limits and language defaults.
type AnalysisConfig struct {
	MaxInputChars   int    `env:"MAX_INPUT_CHARS"  yaml:"max_input_chars"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" yaml:"default_language"`
}

// SafetyConfig holds safety classification settings.
type SafetyConfig struct {
	DefaultRegion string `env:"DEFAULT_REGION" yaml:"default_region"`
}

// ExpansionConfig holds external lexicon expansion settings.
type ExpansionConfig struct {
	Enabled        bool          `env:"EXPANSION_ENABLED" yaml:"enabled"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RatePerSecond  float64       `yaml:"rate_per_second"`
	RateBurst      int           `yaml:"rate_burst"`
	FreeDictURL    string        `env:"FREEDICT_URL" yaml:"freedict_url"`
	UrbanURL       string        `env:"URBAN_URL"    yaml:"urban_url"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDatabaseDefaults(&cfg.Database)
	setRedisDefaults(&cfg.Redis)
	setAnalysisDefaults(&cfg.Analysis)
	setSafetyDefaults(&cfg.Safety)
	setExpansionDefaults(&cfg.Expansion)
	cfg.Logging.SetDefaults()
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setRedisDefaults(r *RedisConfig) {
	if r.Addr == "" {
		r.Addr = defaultRedisAddr
	}
	if r.Timeout == 0 {
		r.Timeout = defaultRedisTimeoutSec * time.Second
	}
}

func setAnalysisDefaults(a *AnalysisConfig) {
	if a.MaxInputChars == 0 {
		a.MaxInputChars = defaultMaxInputChars
	}
	if a.DefaultLanguage == "" {
		a.DefaultLanguage = defaultDefaultLanguage
	}
}

func setSafetyDefaults(s *SafetyConfig) {
	if s.DefaultRegion == "" {
		s.DefaultRegion = defaultDefaultRegion
	}
}

func setExpansionDefaults(e *ExpansionConfig) {
	if e.CacheTTL == 0 {
		e.CacheTTL = defaultExpansionTTLHours * time.Hour
	}
	if e.RequestTimeout == 0 {
		e.RequestTimeout = defaultExpansionTimeout
	}
	if e.RatePerSecond == 0 {
		e.RatePerSecond = defaultExpansionRate
	}
	if e.RateBurst == 0 {
		e.RateBurst = defaultExpansionBurst
	}
	if e.FreeDictURL == "" {
		e.FreeDictURL = defaultFreeDictURL
	}
	if e.UrbanURL == "" {
		e.UrbanURL = defaultUrbanURL
	}
}
