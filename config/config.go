package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server struct {
		Port            string        `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	Redis struct {
		Host     string        `mapstructure:"host"`
		Port     string        `mapstructure:"port"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"redis"`
	JWT struct {
		SecretKey string        `mapstructure:"secret_key"`
		TTL       time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Notification NotificationConfig `mapstructure:"notification"`
}

// DatabaseConfig locates the Postgres database holding the farmers table.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationsPath  string        `mapstructure:"migrations_path"`
}

// NotificationConfig selects and tunes the SMS transport used for confirmation messages.
// Transport is either "stub" (simulated gateway) or "http".
type NotificationConfig struct {
	Transport      string        `mapstructure:"transport"`
	SimulatedDelay time.Duration `mapstructure:"simulated_delay"`
	GatewayURL     string        `mapstructure:"gateway_url"`
	GatewayToken   string        `mapstructure:"gateway_token"`
	Sender         string        `mapstructure:"sender"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "harvesthub")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "harvesthub")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("database.migrations_path", "file://db/migrations")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", 10*time.Minute)

	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.ttl", time.Hour)

	v.SetDefault("log.level", "info")

	v.SetDefault("notification.transport", "stub")
	v.SetDefault("notification.simulated_delay", 1500*time.Millisecond)
	v.SetDefault("notification.gateway_url", "")
	v.SetDefault("notification.gateway_token", "")
	v.SetDefault("notification.sender", "HarvestHub")
	v.SetDefault("notification.timeout", 10*time.Second)
}

// Load reads config.yml from path, applies HARVESTHUB_* environment overrides and defaults.
// A missing config file is not an error; defaults and the environment are used instead.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("harvesthub")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig populates AppConfig, aborting the process when the configuration cannot be decoded.
func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}
	AppConfig = cfg
}
