package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	BackendRemote   = "remote"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"

	defaultConfigPath = "configs/flow-server.yaml"
)

type Config struct {
	Port          string        `yaml:"port"`
	StoreBackend  string        `yaml:"store_backend"`
	StoreURL      string        `yaml:"store_url"`
	StoreTimeout  time.Duration `yaml:"store_timeout"`
	RefreshCron   string        `yaml:"refresh_cron"`
	Timezone      string        `yaml:"timezone"`
	PIN           string        `yaml:"pin"`
	NumWorkers    int           `yaml:"num_workers"`
	SQLitePath    string        `yaml:"sqlite_path"`
	MigrationsDir string        `yaml:"migrations_dir"`

	PostgresAddress  string `yaml:"postgres_address"`
	PostgresPort     string `yaml:"postgres_port"`
	PostgresDB       string `yaml:"postgres_db"`
	PostgresUsername string `yaml:"postgres_username"`
	PostgresPassword string `yaml:"postgres_password"`
}

func defaults() Config {
	// In all cases the default behavior should be for the docker compose setup
	return Config{
		Port:             "9446",
		StoreBackend:     BackendRemote,
		StoreTimeout:     30 * time.Second,
		RefreshCron:      "0 */5 * * * *",
		Timezone:         "UTC",
		NumWorkers:       1,
		SQLitePath:       "data/flow.db",
		MigrationsDir:    "file://migrations",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	}
}

// ProcessEnvironmentVariables builds the configuration from defaults, then the YAML file
// named by CONFIG_PATH, then environment variables. Later sources win.
func ProcessEnvironmentVariables() (*Config, error) {
	path := defaultConfigPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	env, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := env.applyEnvironment(); err != nil {
		return nil, err
	}
	return env, nil
}

// LoadFile reads the persisted settings over the defaults. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	env := defaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	return &env, nil
}

func (c *Config) applyEnvironment() error {
	overrides := map[string]*string{
		"PORT":              &c.Port,
		"STORE_BACKEND":     &c.StoreBackend,
		"STORE_URL":         &c.StoreURL,
		"REFRESH_CRON":      &c.RefreshCron,
		"TZ_NAME":           &c.Timezone,
		"FLOW_PIN":          &c.PIN,
		"SQLITE_PATH":       &c.SQLitePath,
		"MIGRATIONS_DIR":    &c.MigrationsDir,
		"POSTGRES_ADDRESS":  &c.PostgresAddress,
		"POSTGRES_PORT":     &c.PostgresPort,
		"POSTGRES_DB":       &c.PostgresDB,
		"POSTGRES_USERNAME": &c.PostgresUsername,
		"POSTGRES_PASSWORD": &c.PostgresPassword,
	}
	for name, field := range overrides {
		if v := os.Getenv(name); len(v) != 0 {
			*field = v
		}
	}

	if v := os.Getenv("STORE_TIMEOUT"); len(v) != 0 {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("STORE_TIMEOUT: %w", err)
		}
		c.StoreTimeout = timeout
	}
	if v := os.Getenv("NUM_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NUM_WORKERS: %w", err)
		}
		c.NumWorkers = workers
	}
	return nil
}

// Validate checks the settings that would otherwise fail at first use.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendRemote:
		if c.StoreURL == "" {
			return fmt.Errorf("store_url is required for the %s backend", BackendRemote)
		}
	case BackendPostgres, BackendSQLite:
	default:
		return fmt.Errorf("unknown store_backend %q", c.StoreBackend)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.NumWorkers < 1 {
		return fmt.Errorf("num_workers must be at least 1")
	}
	return nil
}

// Location is the timezone that defines "today".
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
