package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultAdminSecretCode - код регистрации по умолчанию. Оставлять его в
// продакшене нельзя, main логирует предупреждение при старте.
const DefaultAdminSecretCode = "202507"

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Auth       AuthConfig
	GoogleMaps GoogleMapsConfig
	Gemini     GeminiConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GardensCacheTTL time.Duration
	StatsCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret       string
	TokenTTL        time.Duration
	AdminSecretCode string
	BcryptCost      int
}

type GoogleMapsConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout int // seconds
}

type GeminiConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	RequestTimeout int // seconds
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GardensCacheTTL: time.Duration(viper.GetInt("GARDENS_CACHE_TTL")) * time.Second,
			StatsCacheTTL:   time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret:       viper.GetString("JWT_SECRET"),
			TokenTTL:        time.Duration(viper.GetInt("JWT_TOKEN_TTL")) * time.Second,
			AdminSecretCode: viper.GetString("ADMIN_SECRET_CODE"),
			BcryptCost:      viper.GetInt("BCRYPT_COST"),
		},
		GoogleMaps: GoogleMapsConfig{
			APIKey:         viper.GetString("GOOGLE_MAPS_API_KEY"),
			BaseURL:        viper.GetString("GOOGLE_MAPS_BASE_URL"),
			RequestTimeout: viper.GetInt("GOOGLE_MAPS_REQUEST_TIMEOUT"),
		},
		Gemini: GeminiConfig{
			APIKey:         viper.GetString("GEMINI_API_KEY"),
			BaseURL:        viper.GetString("GEMINI_BASE_URL"),
			Model:          viper.GetString("GEMINI_MODEL"),
			RequestTimeout: viper.GetInt("GEMINI_REQUEST_TIMEOUT"),
		},
	}

	// Set default values if not provided
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = time.Hour
	}
	if cfg.Auth.AdminSecretCode == "" {
		cfg.Auth.AdminSecretCode = DefaultAdminSecretCode
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 60 * time.Second
	}
	if cfg.GoogleMaps.BaseURL == "" {
		cfg.GoogleMaps.BaseURL = "https://maps.googleapis.com"
	}
	if cfg.GoogleMaps.RequestTimeout == 0 {
		cfg.GoogleMaps.RequestTimeout = 10
	}
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash"
	}
	if cfg.Gemini.RequestTimeout == 0 {
		cfg.Gemini.RequestTimeout = 30
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
