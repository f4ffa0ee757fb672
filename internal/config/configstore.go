package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the CLI defaults persisted in the config file.
type Config struct {
	// Database is the default database file path.
	Database string `toml:"database"`

	// Table is the default table name.
	Table string `toml:"table"`

	// Verbose enables verbose logging by default.
	Verbose bool `toml:"verbose"`
}

// DefaultTable is used when the config file does not name a table.
const DefaultTable = "data"

// Store is a file-backed config store using TOML.
type Store struct {
	mu       sync.Mutex
	filePath string
	cfg      Config
}

// NewStore creates a config store rooted at configDir. If configDir is
// empty, defaults to ~/.sqldbm. Existing configuration is loaded;
// missing fields fall back to defaults.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".sqldbm")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &Store{
		filePath: filepath.Join(configDir, "config.toml"),
		cfg: Config{
			Database: filepath.Join(configDir, "data.db"),
			Table:    DefaultTable,
		},
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current configuration.
func (s *Store) Get() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Set replaces the configuration and persists it immediately.
func (s *Store) Set(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg
	return s.save()
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.filePath
}

// load reads the TOML file over the defaults. A missing file is not an
// error; the store starts with defaults.
func (s *Store) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &s.cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if s.cfg.Table == "" {
		s.cfg.Table = DefaultTable
	}
	return nil
}

// save writes the configuration to the TOML file (caller must hold the
// lock).
func (s *Store) save() error {
	data, err := toml.Marshal(s.cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// Restricted permissions, matching the config directory.
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
