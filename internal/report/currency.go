package report

// Currency identifies which currency amounts are rendered in. Amounts are
// always stored in the base currency; Display is applied at render time only.
type Currency string

const (
	CurrencyBase    Currency = "RUB"
	CurrencyDisplay Currency = "USD"
)

// DisplayAmount projects a base-currency amount into the chosen display
// currency. The rate is expressed as base-currency units per one display
// unit, so converting base to the display currency divides by rate.
// This direction must not be inverted: doing so silently corrupts every
// rendered monetary value.
func DisplayAmount(baseAmount float64, currency Currency, rate float64) float64 {
	if currency == CurrencyBase || rate == 0 {
		return baseAmount
	}
	return baseAmount / rate
}

// NormalizeAmount converts an amount the user entered in the given currency
// into the base currency for storage. Entry in the display currency
// multiplies by rate; base-currency entry passes through.
func NormalizeAmount(entered float64, currency Currency, rate float64) float64 {
	if currency == CurrencyBase {
		return entered
	}
	return entered * rate
}
