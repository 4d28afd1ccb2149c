package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	// postgres driver
	_ "github.com/lib/pq"
	"max.ks1230/expense-manager/internal/entity/user"
	"max.ks1230/expense-manager/internal/logger"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=%s"

const accountsTable = "accounts"

const createAccountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
	username   TEXT PRIMARY KEY,
	password   TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(ctx context.Context, config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if _, err = db.ExecContext(ctx, createAccountsTable); err != nil {
		return nil, errors.Wrap(err, "cannot create accounts table")
	}
	logger.Info("postgres account storage ready", zap.String("host", config.Host()))
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close postgres connection", zap.Error(err))
	}
}

func getAccountQuery(username string) sq.SelectBuilder {
	return psql.Select("username", "password").
		From(accountsTable).
		Where(sq.Eq{"username": username})
}

func createAccountQuery(acc user.Account, createdAt time.Time) sq.InsertBuilder {
	return psql.Insert(accountsTable).
		Columns("username", "password", "created_at").
		Values(acc.Username, acc.Password, createdAt).
		Suffix("ON CONFLICT (username) DO NOTHING")
}

func (s *PostgresStorage) GetAccount(ctx context.Context, username string) (user.Account, bool, error) {
	var acc user.Account
	err := getAccountQuery(username).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&acc.Username, &acc.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Account{}, false, nil
	}
	if err != nil {
		return user.Account{}, false, errors.Wrap(err, "get account")
	}
	return acc, true, nil
}

// CreateAccount inserts acc unless the username is taken and reports whether a row was written.
func (s *PostgresStorage) CreateAccount(ctx context.Context, acc user.Account) (bool, error) {
	res, err := createAccountQuery(acc, time.Now()).RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return false, errors.Wrap(err, "create account")
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "create account")
	}
	return inserted == 1, nil
}
