package storage

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/adibhanna/hiitsessions/internal/models"
)

const dirName = ".hiitsessions"

type Storage struct {
	dataDir string
}

// New opens the storage under ~/.hiitsessions.
func New() (*Storage, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "get home directory")
	}

	return NewAt(filepath.Join(homeDir, dirName))
}

// NewAt opens the storage in dataDir, creating it if needed.
func NewAt(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create data dir %s", dataDir)
	}

	return &Storage{dataDir: dataDir}, nil
}

func (s *Storage) DataDir() string {
	return s.dataDir
}

func (s *Storage) configFile() string {
	return filepath.Join(s.dataDir, "config.toml")
}

// LogFile is where the application log is written.
func (s *Storage) LogFile() string {
	return filepath.Join(s.dataDir, "hiitsessions.log")
}

// GetConfig reads the config file, writing the defaults on first use.
// Keys missing from the file keep their default values.
func (s *Storage) GetConfig() (models.Config, error) {
	data, err := os.ReadFile(s.configFile())
	if err != nil {
		if os.IsNotExist(err) {
			config := models.DefaultConfig()
			if err := s.SaveConfig(config); err != nil {
				return config, err
			}
			return config, nil
		}
		return models.Config{}, errors.Wrap(err, "read config")
	}

	config := models.DefaultConfig()
	if _, err := toml.Decode(string(data), &config); err != nil {
		return models.Config{}, errors.Wrapf(err, "parse config file %s", s.configFile())
	}

	if err := config.Validate(); err != nil {
		return models.Config{}, errors.Wrapf(err, "invalid config file %s", s.configFile())
	}

	return config, nil
}

func (s *Storage) SaveConfig(config models.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return errors.Wrap(err, "encode config")
	}

	return errors.Wrap(os.WriteFile(s.configFile(), buf.Bytes(), 0644), "write config")
}

// ResetAllData removes the config file so defaults apply on next load.
func (s *Storage) ResetAllData() error {
	if err := os.Remove(s.configFile()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove config")
	}

	return nil
}

func (s *Storage) IsFirstTime() bool {
	if _, err := os.Stat(s.configFile()); os.IsNotExist(err) {
		return true
	}
	return false
}
