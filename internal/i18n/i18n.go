// Package i18n holds the UI translation tables and locale detection.
package i18n

import (
	"os"
	"strings"
)

// Lang is a supported interface language.
type Lang string

const (
	LangRU Lang = "ru"
	LangEN Lang = "en"
)

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool { return l == LangRU || l == LangEN }

// Detect resolves the default language from the process locale. Russian,
// Ukrainian and Belarusian locales map to Russian; everything else falls
// back to English.
func Detect() Lang {
	return detectFrom(locale())
}

func detectFrom(locale string) Lang {
	lang := strings.ToLower(locale)
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	switch lang {
	case "ru", "uk", "be":
		return LangRU
	default:
		return LangEN
	}
}

// locale returns the first non-empty POSIX locale variable.
func locale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// T returns the translation table for the given language.
func T(lang Lang) map[string]string {
	if lang == LangRU {
		return ru
	}
	return en
}

var ru = map[string]string{
	"greet":   "Привет",
	"balance": "Ваш баланс",
	"income":  "Приход",
	"expense": "Расход",
	"history": "История",
	"empty":   "История пуста",
	"all":     "Все",
	"day":     "День",
	"week":    "Неделя",
	"month":   "Месяц",
	"total":   "Итого",
}

var en = map[string]string{
	"greet":   "Welcome",
	"balance": "Total Balance",
	"income":  "Income",
	"expense": "Expense",
	"history": "History",
	"empty":   "No history yet",
	"all":     "All",
	"day":     "Day",
	"week":    "Week",
	"month":   "Month",
	"total":   "Total",
}
