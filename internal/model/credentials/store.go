package credentials

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-manager/internal/entity/user"
	"max.ks1230/expense-manager/internal/logger"
)

type accountStorage interface {
	GetAccount(ctx context.Context, username string) (user.Account, bool, error)
	CreateAccount(ctx context.Context, acc user.Account) (bool, error)
}

// Store registers and authenticates accounts. Passwords are stored and
// compared in plain text.
type Store struct {
	storage accountStorage
}

func NewStore(storage accountStorage) *Store {
	return &Store{storage: storage}
}

// Register returns false when the username is already taken.
func (s *Store) Register(ctx context.Context, username, password string) (bool, error) {
	created, err := s.storage.CreateAccount(ctx, user.Account{
		Username: username,
		Password: password,
	})
	if err != nil {
		return false, errors.Wrap(err, "register")
	}
	if created {
		logger.Info("account registered", zap.String("username", username))
	} else {
		logger.Warn("duplicate registration", zap.String("username", username))
	}
	return created, nil
}

func (s *Store) Authenticate(ctx context.Context, username, password string) (bool, error) {
	acc, ok, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		return false, errors.Wrap(err, "authenticate")
	}
	return ok && acc.PasswordMatches(password), nil
}
