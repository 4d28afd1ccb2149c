package config

const (
	defaultCurrencySymbol = "$"
	defaultDateLayout     = "2006-01-02"
)

type AppConfig struct {
	Currency   string `yaml:"currency-symbol"`
	DateFormat string `yaml:"date-layout"`
	SortByDate bool   `yaml:"sort-by-date"`
}

func (s *AppConfig) CurrencySymbol() string {
	return s.Currency
}

func (s *AppConfig) DateLayout() string {
	if s.DateFormat == "" {
		return defaultDateLayout
	}
	return s.DateFormat
}

func (s *AppConfig) ViewSortedByDate() bool {
	return s.SortByDate
}
