package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port               int      `mapstructure:"port"`
	DatabasePath       string   `mapstructure:"database_path"`
	LogLevel           string   `mapstructure:"log_level"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	JWTSecret          string   `mapstructure:"jwt_secret"`
	AdminEmail         string   `mapstructure:"admin_email"`          // exactly one privileged account; promoted to admin at signup
	Production         bool     `mapstructure:"production"`           // drives cookie Secure/SameSite for the cross-site frontend
	TrustProxyHeaders  bool     `mapstructure:"trust_proxy_headers"`  // honor X-Forwarded-For/X-Real-IP; only behind a known proxy
	RequestTimeoutSec  int      `mapstructure:"request_timeout_sec"`  // HTTP read/write; 0 = use server default
	ShutdownTimeoutSec int      `mapstructure:"shutdown_timeout_sec"` // Graceful shutdown wait
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/khetmitra/")
	viper.AddConfigPath("$HOME/.khetmitra")
	viper.AddConfigPath(".")

	// Defaults
	viper.SetDefault("port", 2713)
	viper.SetDefault("database_path", "./khetmitra.db")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("allowed_origins", []string{"http://localhost:5173", "https://www.khetmitra.live"})
	viper.SetDefault("jwt_secret", "")
	viper.SetDefault("admin_email", "")
	viper.SetDefault("production", false)
	viper.SetDefault("trust_proxy_headers", false)
	viper.SetDefault("request_timeout_sec", 30)
	viper.SetDefault("shutdown_timeout_sec", 15)

	// Environment variables
	viper.SetEnvPrefix("KHETMITRA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; using defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required (set KHETMITRA_JWT_SECRET)")
	}

	return &cfg, nil
}
