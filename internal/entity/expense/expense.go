package expense

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/now"
)

const DateLayout = "2006-01-02"

type Record struct {
	Category string
	Amount   float64
	Date     time.Time
}

func New(category string, amount float64, date time.Time) Record {
	return Record{
		Category: category,
		Amount:   amount,
		Date:     DateOf(date),
	}
}

// DateOf drops the clock and zone of t, keeping its calendar date as midnight UTC.
func DateOf(t time.Time) time.Time {
	day := now.With(t).BeginningOfDay()
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders the record as a single line of the expense listing.
func (r Record) Format(currency, dateLayout string) string {
	return fmt.Sprintf("Category: %s, Amount: %s%s, Date: %s",
		r.Category, currency, FormatAmount(r.Amount), r.Date.Format(dateLayout))
}

func (r Record) String() string {
	return r.Format("$", DateLayout)
}

func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
