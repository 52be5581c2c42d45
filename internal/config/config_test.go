package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "sqlite", Path: "/tmp/learnlog.db"},
		Calendar: CalendarConfig{MinDate: "2022-01-01"},
		Logger:   LoggerConfig{Level: "info"},
		Server:   ServerConfig{Host: "127.0.0.1", Port: 8080},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_UnknownDriver(t *testing.T) {
	c := validConfig()
	c.Database.Driver = "mysql"
	assert.Error(t, c.Validate())
}

func TestValidate_PostgresRequiresDSN(t *testing.T) {
	c := validConfig()
	c.Database.Driver = "postgres"
	assert.Error(t, c.Validate())

	c.Database.DSN = "host=localhost user=postgres dbname=learninglog"
	assert.NoError(t, c.Validate())
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	assert.Error(t, c.Validate())
}

func TestValidate_ZeroPort(t *testing.T) {
	c := validConfig()
	c.Server.Port = 0
	assert.Error(t, c.Validate())
}

func TestValidate_MinDateLayout(t *testing.T) {
	for _, bad := range []string{"2022/01/01", "01/01/2022", "2022-13-01"} {
		c := validConfig()
		c.Calendar.MinDate = bad
		err := c.Validate()
		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), "invalid calendar config")
	}
}

func TestMinDate(t *testing.T) {
	c := validConfig()
	assert.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), c.MinDate())

	c.Calendar.MinDate = "2024-03-10"
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), c.MinDate())
}

func TestLoad_ReadsFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "learnlog.yaml")
	content := `
database:
  driver: sqlite
  path: ` + filepath.Join(dir, "log.db") + `
calendar:
  minDate: "2023-05-01"
logger:
  level: debug
server:
  port: 9000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("LEARNLOG_SERVER_PORT", "9100")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, conf.Path)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, filepath.Join(dir, "log.db"), conf.Database.Path)
	assert.Equal(t, "2023-05-01", conf.Calendar.MinDate)
	assert.Equal(t, "debug", conf.Logger.Level)
	assert.Equal(t, 9100, conf.Server.Port)
	assert.Equal(t, "127.0.0.1", conf.Server.Host)
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultMinDate, conf.Calendar.MinDate)
	assert.Equal(t, filepath.Join(dir, ".learnlog", "learnlog.db"), conf.Database.Path)
	assert.Equal(t, "info", conf.Logger.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsMinDateLayoutFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LEARNLOG_CALENDAR_MINDATE", "2022/01/01")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid calendar config")
}
