package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Currency is an ISO-like currency code as it appears in the vacancy export.
type Currency string

// ReferenceCurrency is the currency every salary is normalized into.
const ReferenceCurrency Currency = "RUR"

// exchangeRates maps a currency to its fixed rate against ReferenceCurrency.
// Written once at package init and never mutated.
var exchangeRates = map[Currency]decimal.Decimal{
	"AZN": decimal.RequireFromString("35.68"),
	"BYR": decimal.RequireFromString("23.91"),
	"EUR": decimal.RequireFromString("59.90"),
	"GEL": decimal.RequireFromString("21.74"),
	"KGS": decimal.RequireFromString("0.76"),
	"KZT": decimal.RequireFromString("0.13"),
	"RUR": decimal.NewFromInt(1),
	"UAH": decimal.RequireFromString("1.64"),
	"USD": decimal.RequireFromString("60.66"),
	"UZS": decimal.RequireFromString("0.0055"),
}

// Rate returns the conversion rate of c into ReferenceCurrency.
func Rate(c Currency) (decimal.Decimal, bool) {
	rate, ok := exchangeRates[c]
	return rate, ok
}

// Currencies returns the supported currency codes in lexical order.
func Currencies() []Currency {
	out := make([]Currency, 0, len(exchangeRates))
	for c := range exchangeRates {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
