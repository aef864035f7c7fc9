package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yaml"

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Store          string        `yaml:"store"`
	SeedDemo       bool          `yaml:"seed_demo"`
	Database       Database      `yaml:"database"`
	MigrationsPath string        `yaml:"migrations_path"`
	HTTP           HTTP          `yaml:"http"`
	Notifications  Notifications `yaml:"notifications"`
}

/*
Connection settings of the postgres store. When URL is set it is used
verbatim and the other fields are ignored.
*/
type Database struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type HTTP struct {
	Port           int           `yaml:"port"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type Notifications struct {
	Enabled bool          `yaml:"enabled"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

func Default() Config {
	return Config{
		Store: StorePostgres,
		Database: Database{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			Name:    "kiwi_kloset",
			SSLMode: "disable",
		},
		MigrationsPath: "migrations",
		HTTP: HTTP{
			Port:           8080,
			RequestTimeout: 5 * time.Second,
		},
		Notifications: Notifications{
			Enabled: false,
			BaseURL: "https://ntfy.sh/kiwi_kloset",
			Timeout: 2 * time.Second,
		},
	}
}

/*
Loads the configuration: defaults, then the YAML file at path (a missing file
is not an error), then the environment variables.
*/
func Load(path string) (Config, error) {
	cfg := Default()

	buf, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	err = cfg.applyEnv()
	if err != nil {
		return Config{}, err
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	setString(&cfg.Store, "STORE")
	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.MigrationsPath, "DATABASE_MIGRATIONS_PATH")
	setString(&cfg.Notifications.BaseURL, "NOTIFICATIONS_BASE_URL")

	if err := setInt(&cfg.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.HTTP.Port, "HTTP_PORT"); err != nil {
		return err
	}
	//Durations must be written with a unit suffix, like "5s".
	if err := setDuration(&cfg.HTTP.RequestTimeout, "HTTP_REQUEST_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Notifications.Timeout, "NOTIFICATIONS_TIMEOUT"); err != nil {
		return err
	}
	if err := setBool(&cfg.Notifications.Enabled, "NOTIFICATIONS_ENABLED"); err != nil {
		return err
	}
	if err := setBool(&cfg.SeedDemo, "SEED_DEMO"); err != nil {
		return err
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.Store != StorePostgres && cfg.Store != StoreMemory {
		return fmt.Errorf("invalid store %q: want %q or %q", cfg.Store, StorePostgres, StoreMemory)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port: %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("invalid http request timeout: %s", cfg.HTTP.RequestTimeout)
	}
	if cfg.Notifications.Enabled && cfg.Notifications.BaseURL == "" {
		return errors.New("notifications enabled without a base url")
	}
	return nil
}

/* Postgres connection string: the configured URL, or one built from the separate fields. */
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else if d.User != "" {
		u.User = url.User(d.User)
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}
	*dst = d
	return nil
}
