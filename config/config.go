// Package config loads the settings of the money tracker.
//
// Settings come, by increasing priority, from the defaults, the YAML
// configuration file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/report"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "moneytracker.yaml"

// DotEnvFile is loaded into the environment before reading it.
const DotEnvFile = ".env"

// Environment variables overriding the configuration file.
const (
	EnvLedgerFile = "MT_LEDGER_FILE"
	EnvBackend    = "MT_BACKEND"
	EnvCurrency   = "MT_CURRENCY"
	EnvExportName = "MT_EXPORT_NAME"
	EnvStyle      = "MT_STYLE"
)

// Storage backends.
const (
	BackendAuto   = "auto"
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds the settings.
type Config struct {
	LedgerFile string `yaml:"ledger_file"`
	Backend    string `yaml:"backend"`
	Currency   string `yaml:"currency"`
	ExportName string `yaml:"export_name"`
	Style      string `yaml:"style"`
}

// Default returns the default settings.
func Default() Config {
	return Config{
		LedgerFile: "items.json",
		Backend:    BackendAuto,
		Currency:   moneytracker.DefaultCurrency,
		ExportName: report.DefaultName,
		Style:      "auto",
	}
}

// Load reads the configuration file at path, or DefaultFile when path is
// empty, then applies the environment. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading %s: %w", DotEnvFile, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	for env, field := range map[string]*string{
		EnvLedgerFile: &c.LedgerFile,
		EnvBackend:    &c.Backend,
		EnvCurrency:   &c.Currency,
		EnvExportName: &c.ExportName,
		EnvStyle:      &c.Style,
	} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*field = v
		}
	}
}

// Validate checks the backend name and the currency code.
func (c Config) Validate() error {
	if strings.TrimSpace(c.LedgerFile) == "" {
		return errors.New("ledger_file is required")
	}
	switch c.Backend {
	case BackendAuto, BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", c.Backend, BackendAuto, BackendJSON, BackendSQLite)
	}
	if !moneytracker.KnownCurrency(c.Currency) {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	return nil
}

// BackendFor resolves the backend of a ledger file. The auto backend picks
// SQLite for .db, .sqlite and .sqlite3 files and JSON otherwise.
func (c Config) BackendFor(path string) string {
	if c.Backend != "" && c.Backend != BackendAuto {
		return c.Backend
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return BackendSQLite
	default:
		return BackendJSON
	}
}
