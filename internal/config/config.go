package config

import (
	"fmt"
	"os"
	"time"

	"github.com/keoko/mots/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	Env         string            `mapstructure:"env" validate:"oneof=development production staging"`
	BotToken    string            `mapstructure:"bot_token"`
	PlayerName  string            `mapstructure:"player_name" validate:"max=8"`
	Storage     StorageConfig     `mapstructure:"storage" validate:"required"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard" validate:"required"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 postgres mysql memory"`
	Path   string `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	DSN    string `mapstructure:"dsn" validate:"required_if=Driver mysql"`
	Conn   DBConn `mapstructure:"conn"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type LeaderboardConfig struct {
	BaseURL       string        `mapstructure:"base_url" validate:"required,url"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"min=1"`
	RetryInterval time.Duration `mapstructure:"retry_interval" validate:"min=1"`
}

type CatalogConfig struct {
	XLSXPath string `mapstructure:"xlsx_path"`
}

var envBindings = map[string]string{
	"bot_token":             "BOT_TOKEN",
	"player_name":           "PLAYER_NAME",
	"storage.driver":        "STORAGE_DRIVER",
	"storage.path":          "STORAGE_PATH",
	"storage.dsn":           "STORAGE_DSN",
	"storage.conn.host":     "DB_HOST",
	"storage.conn.port":     "DB_PORT",
	"storage.conn.user":     "DB_USER",
	"storage.conn.password": "DB_PASSWORD",
	"storage.conn.name":     "DB_NAME",
	"storage.conn.ssl":      "DB_SSL",
	"leaderboard.base_url":  "LEADERBOARD_URL",
	"catalog.xlsx_path":     "CATALOG_XLSX",
}

func Init() (*Config, error) {
	return load("configs")
}

func load(dir string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath(dir)
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
