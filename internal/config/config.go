package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrNoDatabase is returned alongside a usable Config when DATABASE_URL is
// unset. Callers decide whether that is fatal.
var ErrNoDatabase = errors.New("DATABASE_URL not set")

type Config struct {
	Env            string        `mapstructure:"app_env"`
	ListenAddr     string        `mapstructure:"listen_addr"`
	DatabaseURL    string        `mapstructure:"database_url"`
	StorageTimeout time.Duration `mapstructure:"storage_timeout"`

	SessionSecret  string        `mapstructure:"session_secret"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
	RequireSession bool          `mapstructure:"require_session"`
	CORSOrigins    []string      `mapstructure:"cors_origins"`

	CriteriaFile string `mapstructure:"criteria_file"`

	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	KafkaTopic   string   `mapstructure:"kafka_topic"`

	ReportsBucket string `mapstructure:"reports_bucket"`
	ReportsQueue  string `mapstructure:"reports_queue"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

var keys = map[string]any{
	"app_env":         "development",
	"listen_addr":     ":5000",
	"database_url":    "",
	"storage_timeout": 5 * time.Second,
	"session_secret":  "",
	"session_ttl":     24 * time.Hour,
	"require_session": false,
	"cors_origins":    "*",
	"criteria_file":   "",
	"kafka_brokers":   "",
	"kafka_topic":     "esg.assessments",
	"reports_bucket":  "",
	"reports_queue":   "",
	"auto_migrate":    false,
}

// Load reads esgtracker.yaml from the working directory when present, then
// lets environment variables override it.
func Load() (Config, error) {
	return load(viper.New(), "")
}

// LoadFile is Load with an explicit config file.
func LoadFile(path string) (Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (Config, error) {
	for k, def := range keys {
		v.SetDefault(k, def)
		// AutomaticEnv alone does not see keys absent from the config file
		// during Unmarshal.
		_ = v.BindEnv(k, strings.ToUpper(k))
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("esgtracker")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)
	cfg.KafkaBrokers = splitList(cfg.KafkaBrokers)

	if cfg.DatabaseURL == "" {
		return cfg, ErrNoDatabase
	}
	return cfg, nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// SQLitePath reports whether the database URL names a local sqlite file.
func (c Config) SQLitePath() (string, bool) {
	return strings.CutPrefix(c.DatabaseURL, "sqlite://")
}
