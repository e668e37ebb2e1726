package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Required fields
	DatabaseURL   string `mapstructure:"database_url"`
	CookieHashKey string `mapstructure:"cookie_hash_key"`

	// Optional API settings
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Optional session settings
	RedisAddr      string `mapstructure:"redis_addr"`
	RedisPassword  string `mapstructure:"redis_password"`
	CookieName     string `mapstructure:"cookie_name"`
	CookieBlockKey string `mapstructure:"cookie_block_key"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Optional logging settings
	LogLevel string `mapstructure:"log_level"`

	ConfigPath string
}

const (
	DefaultConfigPath = "/etc/litboard/config.yml"
	DefaultAPIHost    = "0.0.0.0"
	DefaultAPIPort    = 4000
	DefaultRedisAddr  = "localhost:6379"
	DefaultCookieName = "qid"
	DefaultLogLevel   = "info"
)

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("api_host", DefaultAPIHost)
	viper.SetDefault("api_port", DefaultAPIPort)
	viper.SetDefault("redis_addr", DefaultRedisAddr)
	viper.SetDefault("cookie_name", DefaultCookieName)
	viper.SetDefault("cors_origins", []string{"http://localhost:3000"})
	viper.SetDefault("log_level", DefaultLogLevel)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("LITBOARD")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}

	if c.CookieHashKey == "" {
		return fmt.Errorf("cookie_hash_key is required")
	}

	// securecookie only accepts AES key lengths for the block key
	if c.CookieBlockKey != "" {
		switch len(c.CookieBlockKey) {
		case 16, 24, 32:
		default:
			return fmt.Errorf("cookie_block_key must be 16, 24 or 32 bytes, got %d", len(c.CookieBlockKey))
		}
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("LITBOARD_DEV_MODE") == "1"
}
