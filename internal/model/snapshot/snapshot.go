package snapshot

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"max.ks1230/expense-manager/internal/entity/expense"
	"max.ks1230/expense-manager/internal/logger"
)

const (
	snapshotKind    = "expense-snapshot"
	snapshotVersion = 1
	dateLayout      = "2006-01-02"
	filePerm        = 0o644
)

// ErrFormat is returned by Load when the file is not a snapshot this program wrote.
var ErrFormat = errors.New("unexpected snapshot format")

type document struct {
	Kind     string   `yaml:"kind"`
	Version  int      `yaml:"version"`
	Expenses []record `yaml:"expenses"`
}

type record struct {
	Category string  `yaml:"category"`
	Amount   float64 `yaml:"amount"`
	Date     string  `yaml:"date"`
}

// FileStore dumps and restores the whole ledger as a single YAML file.
type FileStore struct{}

func NewFileStore() *FileStore {
	return &FileStore{}
}

func (s *FileStore) Save(records []expense.Record, filename string) error {
	doc := document{
		Kind:     snapshotKind,
		Version:  snapshotVersion,
		Expenses: make([]record, 0, len(records)),
	}
	for _, rec := range records {
		doc.Expenses = append(doc.Expenses, record{
			Category: rec.Category,
			Amount:   rec.Amount,
			Date:     rec.Date.Format(dateLayout),
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	if err = writeFile(filename, data); err != nil {
		return errors.Wrap(err, "save snapshot")
	}
	logger.Info("snapshot saved", zap.String("file", filename), zap.Int("expenses", len(records)))
	return nil
}

func writeFile(filename string, data []byte) (err error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = f.Write(data)
	return err
}

func (s *FileStore) Load(filename string) ([]expense.Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("failed to close snapshot", zap.String("file", filename), zap.Error(closeErr))
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	records, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load snapshot %s", filename)
	}
	logger.Info("snapshot loaded", zap.String("file", filename), zap.Int("expenses", len(records)))
	return records, nil
}

func decode(data []byte) ([]expense.Record, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrFormat, "%v", err)
	}
	if doc.Kind != snapshotKind {
		return nil, errors.Wrapf(ErrFormat, "kind %q", doc.Kind)
	}
	if doc.Version != snapshotVersion {
		return nil, errors.Wrapf(ErrFormat, "version %d", doc.Version)
	}

	records := make([]expense.Record, 0, len(doc.Expenses))
	for i, rec := range doc.Expenses {
		date, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			return nil, errors.Wrapf(ErrFormat, "expense %d: bad date %q", i, rec.Date)
		}
		records = append(records, expense.Record{
			Category: rec.Category,
			Amount:   rec.Amount,
			Date:     date,
		})
	}
	return records, nil
}
