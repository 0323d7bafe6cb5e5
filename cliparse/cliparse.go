package cliparse

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/danielhkuo/habit-tracker/validation"
)

type Config struct {
	Port         int    `mapstructure:"port" validate:"min=1,max=65535"`
	DatabaseType string `mapstructure:"database_type" validate:"oneof=sqlite postgres"`
	DatabaseURL  string `mapstructure:"database_url" validate:"required"`
	QuotesFile   string `mapstructure:"quotes_file"`
	MoodLocale   string `mapstructure:"mood_locale" validate:"oneof=en ru"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    string `mapstructure:"log_format" validate:"oneof=text json logfmt"`
	LogFile      string `mapstructure:"log_file"`
}

// config key -> environment variable
var envKeys = map[string]string{
	"port":          "PORT",
	"database_type": "DATABASE_TYPE",
	"database_url":  "DATABASE_URL",
	"quotes_file":   "QUOTES_FILE",
	"mood_locale":   "MOOD_LOCALE",
	"log_level":     "LOG_LEVEL",
	"log_format":    "LOG_FORMAT",
	"log_file":      "LOG_FILE",
}

// config key -> flag name
var flagKeys = map[string]string{
	"port":          "port",
	"database_type": "database-type",
	"database_url":  "database-url",
	"quotes_file":   "quotes-file",
	"mood_locale":   "mood-locale",
	"log_level":     "log-level",
	"log_format":    "log-format",
	"log_file":      "log-file",
}

// ParseFlags builds the config from flags, environment, an optional config
// file and defaults, in that order of precedence.
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("habit-tracker", pflag.ContinueOnError)

	fs.IntP("port", "p", 8080, "Server port")
	fs.StringP("database-type", "t", "sqlite", "Database type (sqlite or postgres)")
	fs.StringP("database-url", "d", "habits.db", "Database file (sqlite) or connection string (postgres)")
	fs.String("quotes-file", "", "JSON file with motivational quotes (default: built-in list)")
	fs.String("mood-locale", "en", "Mood label language (en or ru)")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("log-format", "text", "Log format (text, json, logfmt)")
	fs.String("log-file", "", "Also write logs to this file, rotated")
	configFile := fs.StringP("config", "c", "", "Config file (yaml, json or toml)")
	envFile := fs.String("env-file", ".env", "Load environment variables from this file if it exists")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the .env file.
	if err := godotenv.Load(*envFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) || fs.Changed("env-file") {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	v := viper.New()
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("failed to bind --%s flag: %w", name, err)
		}
	}

	path := *configFile
	if path == "" {
		path = os.Getenv("HABIT_TRACKER_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration format: %w", err)
	}

	validate, err := validation.New()
	if err != nil {
		return Config{}, err
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
