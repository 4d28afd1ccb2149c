package config

import "github.com/pkg/errors"

const (
	MemoryDriver   = "memory"
	PostgresDriver = "postgres"
)

type StorageConfig struct {
	AccountsDriver string `yaml:"accounts"`
}

func (s *StorageConfig) Accounts() string {
	if s.AccountsDriver == "" {
		return MemoryDriver
	}
	return s.AccountsDriver
}

func (s *StorageConfig) validate() error {
	switch s.Accounts() {
	case MemoryDriver, PostgresDriver:
		return nil
	}
	return errors.Errorf("unknown accounts storage %q", s.AccountsDriver)
}
