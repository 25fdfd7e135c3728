package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

// Load reads the yml config at path and applies environment variable
// overrides (e.g. POSTGRES_PASSWORD beats postgres.password in the file).
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	overrideFromEnv(conf)

	return conf, nil
}

func overrideFromEnv(conf *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		conf.API.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		conf.Gin.Mode = v
	}
	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		conf.Postgres.Host = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		conf.Postgres.Port = v
	}
	if v := os.Getenv("POSTGRES_USER"); v != "" {
		conf.Postgres.User = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		conf.Postgres.Password = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		conf.Postgres.DBName = v
	}
}
