package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-manager/internal/entity/expense"
	"max.ks1230/expense-manager/internal/logger"
)

const (
	choosePrompt   = "Choose an option: "
	usernamePrompt = "Enter username: "
	passwordPrompt = "Enter password: "
	categoryPrompt = "Enter category: "
	amountPrompt   = "Enter amount: "
	savePrompt     = "Enter filename to save: "
	loadPrompt     = "Enter filename to load: "
)

const (
	invalidChoiceMessage      = "Invalid choice. Please try again."
	invalidAmountMessage      = "Invalid amount. Please try again."
	registeredMessage         = "Registration successful!"
	usernameTakenMessage      = "Username already exists. Try a different one."
	loginSuccessMessage       = "Login successful!"
	invalidCredentialsMessage = "Invalid credentials. Please try again."
	expenseAddedMessage       = "Expense added successfully!"
	allExpensesHeader         = "\nAll Expenses:"
	somethingWrongMessage     = "Something went wrong: %s"
)

var errInputClosed = errors.New("input closed")

type accountService interface {
	Register(ctx context.Context, username, password string) (bool, error)
	Authenticate(ctx context.Context, username, password string) (bool, error)
}

type expenseLedger interface {
	Add(category string, amount float64, date time.Time)
	All() []expense.Record
	SortedByDate() []expense.Record
	FilterByCategory(category string) []expense.Record
	TotalByCategory(category string) float64
	ReplaceAll(records []expense.Record)
	Len() int
}

type snapshotStore interface {
	Save(records []expense.Record, filename string) error
	Load(filename string) ([]expense.Record, error)
}

type config interface {
	CurrencySymbol() string
	DateLayout() string
	ViewSortedByDate() bool
}

// Shell is the text menu front end. It reads one line per answer from in
// and writes prompts and results to out.
type Shell struct {
	in        *bufio.Reader
	out       io.Writer
	accounts  accountService
	ledger    expenseLedger
	snapshots snapshotStore
	config    config
	clock     func() time.Time
	handlers  handlerMap
}

func New(in io.Reader, out io.Writer, accounts accountService, ledger expenseLedger,
	snapshots snapshotStore, config config) *Shell {
	s := &Shell{
		in:        bufio.NewReader(in),
		out:       out,
		accounts:  accounts,
		ledger:    ledger,
		snapshots: snapshots,
		config:    config,
		clock:     time.Now,
	}
	s.handlers = newMap(s)
	return s
}

// Run serves the main menu until Exit is chosen or the input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printLines(mainMenu.lines()...)
		choice, err := s.readLine(choosePrompt)
		if err != nil {
			return s.stop(err)
		}

		switch mainMenu.parse(choice) {
		case commandRegister:
			err = s.handleRegister(ctx)
		case commandLogin:
			err = s.handleLogin(ctx)
		case commandExit:
			logger.Info("exit requested")
			return nil
		case commandUnknown:
			s.printLines(invalidChoiceMessage)
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

func (s *Shell) stop(err error) error {
	if errors.Is(err, errInputClosed) {
		logger.Info("input closed, exiting")
		return nil
	}
	return err
}

// readLine has no line length limit; a final line without a newline still counts.
func (s *Shell) readLine(prompt string) (string, error) {
	s.print(prompt)
	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", errInputClosed
		}
		err = nil
	}
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Shell) printLines(lines ...string) {
	for _, line := range lines {
		s.print(line + "\n")
	}
}

func (s *Shell) printRecords(records []expense.Record) {
	for _, rec := range records {
		s.printLines(rec.Format(s.config.CurrencySymbol(), s.config.DateLayout()))
	}
}

func (s *Shell) reportFailure(op string, err error) {
	logger.Error(op, zap.Error(err))
	s.printLines(fmt.Sprintf(somethingWrongMessage, err))
}
