package ledger

import (
	"sort"
	"strings"
	"time"

	"max.ks1230/expense-manager/internal/entity/expense"
)

// Ledger holds the expenses of the running session in insertion order.
// Every view it returns is a copy.
type Ledger struct {
	records []expense.Record
}

func New() *Ledger {
	return &Ledger{records: make([]expense.Record, 0)}
}

func (l *Ledger) Add(category string, amount float64, date time.Time) {
	l.records = append(l.records, expense.New(category, amount, date))
}

func (l *Ledger) All() []expense.Record {
	return copyRecords(l.records)
}

func (l *Ledger) Len() int {
	return len(l.records)
}

// SortedByDate orders by ascending date; records on the same date keep insertion order.
func (l *Ledger) SortedByDate() []expense.Record {
	res := copyRecords(l.records)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date.Before(res[j].Date)
	})
	return res
}

func (l *Ledger) FilterByCategory(category string) []expense.Record {
	res := make([]expense.Record, 0)
	for _, rec := range l.records {
		if sameCategory(rec.Category, category) {
			res = append(res, rec)
		}
	}
	return res
}

func (l *Ledger) TotalByCategory(category string) float64 {
	total := 0.0
	for _, rec := range l.records {
		if sameCategory(rec.Category, category) {
			total += rec.Amount
		}
	}
	return total
}

func (l *Ledger) ReplaceAll(records []expense.Record) {
	l.records = copyRecords(records)
}

func sameCategory(a, b string) bool {
	return strings.EqualFold(a, b)
}

func copyRecords(records []expense.Record) []expense.Record {
	res := make([]expense.Record, len(records))
	copy(res, records)
	return res
}
