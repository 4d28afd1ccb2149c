package storage

import (
	"context"

	"max.ks1230/expense-manager/internal/entity/user"
)

type InMemStorage struct {
	accounts map[string]user.Account
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{accounts: make(map[string]user.Account)}
}

func (s *InMemStorage) GetAccount(_ context.Context, username string) (user.Account, bool, error) {
	acc, ok := s.accounts[username]
	return acc, ok, nil
}

func (s *InMemStorage) CreateAccount(_ context.Context, acc user.Account) (bool, error) {
	if _, ok := s.accounts[acc.Username]; ok {
		return false, nil
	}
	s.accounts[acc.Username] = acc
	return true, nil
}
