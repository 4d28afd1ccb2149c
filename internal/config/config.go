package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "data/config.yaml"
	configFileEnvKey  = "CONFIG_FILE"
)

type config struct {
	App      AppConfig      `yaml:"app"`
	Storage  StorageConfig  `yaml:"storage"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type Service struct {
	config config
}

// New reads the config file named by CONFIG_FILE, or data/config.yaml.
func New() (*Service, error) {
	path := os.Getenv(configFileEnvKey)
	if path == "" {
		path = defaultConfigFile
	}
	return NewFromFile(path)
}

// NewFromFile falls back to defaults when the file does not exist.
func NewFromFile(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err = s.config.Storage.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid storage config")
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			Currency:   defaultCurrencySymbol,
			DateFormat: defaultDateLayout,
		},
		Storage: StorageConfig{
			AccountsDriver: MemoryDriver,
		},
		Postgres: PostgresConfig{
			SSL: defaultSSLMode,
		},
	}
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}
