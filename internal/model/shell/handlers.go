package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"max.ks1230/expense-manager/internal/entity/expense"
	"max.ks1230/expense-manager/internal/logger"
)

type session struct {
	id       uuid.UUID
	username string
	active   bool
}

func newSession(username string) *session {
	return &session{
		id:       uuid.New(),
		username: username,
		active:   true,
	}
}

type handler func(ctx context.Context, sess *session) error

type handlerMap map[command]handler

func newMap(s *Shell) handlerMap {
	m := make(handlerMap)
	m[commandAddExpense] = s.handleAddExpense
	m[commandViewAll] = s.handleViewAll
	m[commandViewByCategory] = s.handleViewByCategory
	m[commandViewTotal] = s.handleViewTotal
	m[commandSave] = s.handleSave
	m[commandLoad] = s.handleLoad
	m[commandLogout] = s.handleLogout

	m[commandUnknown] = s.handleUnknown

	return m
}

func (s *Shell) readCredentials() (username, password string, err error) {
	username, err = s.readLine(usernamePrompt)
	if err != nil {
		return "", "", err
	}
	password, err = s.readLine(passwordPrompt)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func (s *Shell) handleRegister(ctx context.Context) error {
	username, password, err := s.readCredentials()
	if err != nil {
		return err
	}

	ok, err := s.accounts.Register(ctx, username, password)
	if err != nil {
		s.reportFailure("register failed", err)
		return nil
	}
	if ok {
		s.printLines(registeredMessage)
	} else {
		s.printLines(usernameTakenMessage)
	}
	return nil
}

func (s *Shell) handleLogin(ctx context.Context) error {
	username, password, err := s.readCredentials()
	if err != nil {
		return err
	}

	ok, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		s.reportFailure("login failed", err)
		return nil
	}
	if !ok {
		logger.Warn("invalid credentials", zap.String("username", username))
		s.printLines(invalidCredentialsMessage)
		return nil
	}

	s.printLines(loginSuccessMessage)
	return s.manageExpenses(ctx, newSession(username))
}

func (s *Shell) manageExpenses(ctx context.Context, sess *session) error {
	logger.Info("session started", zap.Stringer("session", sess.id), zap.String("username", sess.username))

	for sess.active {
		s.printLines(sessionMenu.lines()...)
		choice, err := s.readLine(choosePrompt)
		if err != nil {
			return err
		}
		if err = s.handlers[sessionMenu.parse(choice)](ctx, sess); err != nil {
			return err
		}
	}

	logger.Info("session closed", zap.Stringer("session", sess.id))
	return nil
}

func (s *Shell) handleAddExpense(_ context.Context, sess *session) error {
	category, err := s.readLine(categoryPrompt)
	if err != nil {
		return err
	}
	rawAmount, err := s.readLine(amountPrompt)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(rawAmount), 64)
	if err != nil {
		s.printLines(invalidAmountMessage)
		return nil
	}

	s.ledger.Add(category, amount, s.clock())
	logger.Info("expense added",
		zap.Stringer("session", sess.id),
		zap.String("category", category),
		zap.Float64("amount", amount),
		zap.Int("expenses", s.ledger.Len()))
	s.printLines(expenseAddedMessage)
	return nil
}

func (s *Shell) handleViewAll(_ context.Context, _ *session) error {
	records := s.ledger.All()
	if s.config.ViewSortedByDate() {
		records = s.ledger.SortedByDate()
	}
	s.printLines(allExpensesHeader)
	s.printRecords(records)
	return nil
}

func (s *Shell) handleViewByCategory(_ context.Context, _ *session) error {
	category, err := s.readLine(categoryPrompt)
	if err != nil {
		return err
	}
	s.printLines(fmt.Sprintf("\nExpenses in category %s:", category))
	s.printRecords(s.ledger.FilterByCategory(category))
	return nil
}

func (s *Shell) handleViewTotal(_ context.Context, _ *session) error {
	category, err := s.readLine(categoryPrompt)
	if err != nil {
		return err
	}
	total := s.ledger.TotalByCategory(category)
	s.printLines(fmt.Sprintf("Total expenses in category %s: %s%s",
		category, s.config.CurrencySymbol(), expense.FormatAmount(total)))
	return nil
}

func (s *Shell) handleSave(_ context.Context, sess *session) error {
	filename, err := s.readLine(savePrompt)
	if err != nil {
		return err
	}

	if err = s.snapshots.Save(s.ledger.All(), filename); err != nil {
		logger.Error("save failed", zap.Stringer("session", sess.id), zap.Error(err))
		s.printLines("Error saving expenses: " + err.Error())
		return nil
	}
	s.printLines("Expenses saved to " + filename)
	return nil
}

// handleLoad leaves the ledger as it was when the snapshot cannot be read.
func (s *Shell) handleLoad(_ context.Context, sess *session) error {
	filename, err := s.readLine(loadPrompt)
	if err != nil {
		return err
	}

	records, err := s.snapshots.Load(filename)
	if err != nil {
		logger.Error("load failed", zap.Stringer("session", sess.id), zap.Error(err))
		s.printLines("Error loading expenses: " + err.Error())
		return nil
	}
	s.ledger.ReplaceAll(records)
	s.printLines("Expenses loaded from " + filename)
	return nil
}

func (s *Shell) handleLogout(_ context.Context, sess *session) error {
	sess.active = false
	return nil
}

func (s *Shell) handleUnknown(_ context.Context, _ *session) error {
	s.printLines(invalidChoiceMessage)
	return nil
}
