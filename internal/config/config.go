package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultMinDate is the first day of the learning calendar
	DefaultMinDate = "2022-01-01"

	envPrefix = "LEARNLOG"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required|in:sqlite,postgres"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

type CalendarConfig struct {
	MinDate string `mapstructure:"minDate" validate:"required|date"`
}

type LoggerConfig struct {
	Level   string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic,disabled"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"required|uint|min:1|max:65535"`
}

type Config struct {
	Path     string
	Database DatabaseConfig `mapstructure:"database"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Server   ServerConfig   `mapstructure:"server"`
}

// MinDate returns the parsed first calendar day
func (c *Config) MinDate() time.Time {
	d, err := time.Parse(time.DateOnly, c.Calendar.MinDate)
	if err != nil {
		d, _ = time.Parse(time.DateOnly, DefaultMinDate)
	}
	return d
}

// Load reads configuration from the given file (or ~/.learnlog/config.yaml
// when path is empty), a .env file in the working directory, and
// LEARNLOG_* environment variables, in increasing priority.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, ".learnlog")

	v := viper.New()
	setDefaults(v, baseDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(baseDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	conf.Path = v.ConfigFileUsed()

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

func setDefaults(v *viper.Viper, baseDir string) {
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", filepath.Join(baseDir, "learnlog.db"))
	v.SetDefault("database.dsn", "")
	v.SetDefault("calendar.minDate", DefaultMinDate)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.console", true)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
}

// Validate checks every section against its validate tags plus the rules
// that span fields.
func (c *Config) Validate() error {
	sections := []struct {
		name  string
		value interface{}
	}{
		{"database", &c.Database},
		{"calendar", &c.Calendar},
		{"logger", &c.Logger},
		{"server", &c.Server},
	}
	for _, section := range sections {
		v := validate.Struct(section.value)
		if !v.Validate() {
			return fmt.Errorf("invalid %s config: %s", section.name, v.Errors.One())
		}
	}

	// the date rule also accepts layouts such as 2022/01/01 that MinDate cannot read
	if _, err := time.Parse(time.DateOnly, c.Calendar.MinDate); err != nil {
		return fmt.Errorf("invalid calendar config: minDate must be YYYY-MM-DD, got %q", c.Calendar.MinDate)
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("invalid database config: postgres driver requires a dsn")
		}
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("invalid database config: sqlite driver requires a path")
		}
	}

	return nil
}
