package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/expense-manager/internal/config"
	"max.ks1230/expense-manager/internal/logger"
	"max.ks1230/expense-manager/internal/model/credentials"
	"max.ks1230/expense-manager/internal/model/ledger"
	"max.ks1230/expense-manager/internal/model/shell"
	"max.ks1230/expense-manager/internal/model/snapshot"
	"max.ks1230/expense-manager/internal/model/storage"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Fatal("failed to read .env", zap.Error(err))
	}
	if err := logger.FromEnv(); err != nil {
		logger.Fatal("failed to init logger", zap.Error(err))
	}
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	ctx := context.Background()

	accounts, closeAccounts, err := newAccountStore(ctx, conf)
	if err != nil {
		logger.Fatal("failed to init account storage", zap.Error(err))
	}
	defer closeAccounts()

	sh := shell.New(os.Stdin, os.Stdout, accounts, ledger.New(), snapshot.NewFileStore(), conf.App())

	logger.Info("expense manager started", zap.String("accounts", conf.Storage().Accounts()))
	if err = sh.Run(ctx); err != nil {
		logger.Error("shell stopped", zap.Error(err))
	}
}

func newAccountStore(ctx context.Context, conf *config.Service) (*credentials.Store, func(), error) {
	if conf.Storage().Accounts() == config.PostgresDriver {
		db, err := storage.NewPostgresStorage(ctx, conf.Postgres())
		if err != nil {
			return nil, nil, err
		}
		return credentials.NewStore(db), db.Close, nil
	}
	return credentials.NewStore(storage.NewInMemStorage()), func() {}, nil
}
