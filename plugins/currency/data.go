// Package currency provides the currency provider capability: conversion,
// destination currency metadata, budget conversion and rate trends.
package currency

import (
	"github.com/triply/travelhub/core"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// destinationRegions maps well-known destinations to their ISO 3166-1
// region. Lookup is exact and case-sensitive; misses take the default.
var destinationRegions = map[string]string{
	"Paris":          "FR",
	"London":         "GB",
	"Tokyo":          "JP",
	"New York":       "US",
	"Sydney":         "AU",
	"Rome":           "IT",
	"Barcelona":      "ES",
	"Bangkok":        "TH",
	"Dubai":          "AE",
	"Singapore":      "SG",
	"Istanbul":       "TR",
	"Berlin":         "DE",
	"Amsterdam":      "NL",
	"Toronto":        "CA",
	"Mexico City":    "MX",
	"Cairo":          "EG",
	"Mumbai":         "IN",
	"Seoul":          "KR",
	"Rio de Janeiro": "BR",
	"Zurich":         "CH",
}

var regionCountries = map[string]string{
	"FR": "France", "GB": "United Kingdom", "JP": "Japan", "US": "United States",
	"AU": "Australia", "IT": "Italy", "ES": "Spain", "TH": "Thailand",
	"AE": "United Arab Emirates", "SG": "Singapore", "TR": "Turkey",
	"DE": "Germany", "NL": "Netherlands", "CA": "Canada", "MX": "Mexico",
	"EG": "Egypt", "IN": "India", "KR": "South Korea", "BR": "Brazil",
	"CH": "Switzerland",
}

type currencyMeta struct {
	Name   string
	Symbol string
}

var currencyMetadata = map[string]currencyMeta{
	"USD": {"US Dollar", "$"},
	"EUR": {"Euro", "€"},
	"GBP": {"British Pound", "£"},
	"JPY": {"Japanese Yen", "¥"},
	"AUD": {"Australian Dollar", "A$"},
	"THB": {"Thai Baht", "฿"},
	"AED": {"UAE Dirham", "د.إ"},
	"SGD": {"Singapore Dollar", "S$"},
	"TRY": {"Turkish Lira", "₺"},
	"CAD": {"Canadian Dollar", "C$"},
	"MXN": {"Mexican Peso", "MX$"},
	"EGP": {"Egyptian Pound", "E£"},
	"INR": {"Indian Rupee", "₹"},
	"KRW": {"South Korean Won", "₩"},
	"BRL": {"Brazilian Real", "R$"},
	"CHF": {"Swiss Franc", "CHF"},
}

// usdRates are indicative market rates per 1 USD, used by the mock and as
// the center of randomized trend series.
var usdRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.50,
	"AUD": 1.52,
	"THB": 35.70,
	"AED": 3.67,
	"SGD": 1.34,
	"TRY": 32.50,
	"CAD": 1.36,
	"MXN": 17.10,
	"EGP": 47.90,
	"INR": 83.20,
	"KRW": 1338.00,
	"BRL": 5.04,
	"CHF": 0.88,
}

// defaultCurrencyInfo is the open fallback for unrecognized destinations
var defaultCurrencyInfo = core.CurrencyInfo{
	Code:    "USD",
	Name:    "US Dollar",
	Symbol:  "$",
	Country: "Unknown",
}

// lookupCurrencyInfo resolves a destination to its currency metadata.
// The region is resolved through x/text so the code always matches the
// country's actual tender.
func lookupCurrencyInfo(destination string) core.CurrencyInfo {
	regionCode, ok := destinationRegions[destination]
	if !ok {
		return defaultCurrencyInfo
	}

	region, err := language.ParseRegion(regionCode)
	if err != nil {
		return defaultCurrencyInfo
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return defaultCurrencyInfo
	}

	code := unit.String()
	info := core.CurrencyInfo{Code: code, Country: regionCountries[regionCode]}
	if meta, ok := currencyMetadata[code]; ok {
		info.Name = meta.Name
		info.Symbol = meta.Symbol
	} else {
		info.Name = code
		info.Symbol = code
	}
	return info
}

// baseRate derives the cross rate between two currencies via USD.
// A pair outside the table is an error condition, not a silent fallback.
func baseRate(from, to string) (float64, error) {
	fromRate, ok := usdRates[from]
	if !ok {
		return 0, core.Validationf("no exchange rate available for currency %s", from)
	}
	toRate, ok := usdRates[to]
	if !ok {
		return 0, core.Validationf("no exchange rate available for currency %s", to)
	}
	return toRate / fromRate, nil
}
