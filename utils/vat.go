package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceTypeAccommodation is the only service type the rate table
// currently distinguishes; anything else falls back to it.
const ServiceTypeAccommodation = "accommodation"

// DefaultVATRate applies when the property country is unknown.
var DefaultVATRate = decimal.NewFromFloat(0.10)

// accommodationRates holds the reduced VAT rates that apply to hotel
// accommodation per country. Many countries tax lodging below their
// standard rate, hence a dedicated table instead of a generic one.
var accommodationRates = map[string]decimal.Decimal{
	"ES": decimal.NewFromFloat(0.10),
	"PT": decimal.NewFromFloat(0.06),
	"FR": decimal.NewFromFloat(0.10),
	"IT": decimal.NewFromFloat(0.10),
	"DE": decimal.NewFromFloat(0.07),
	"AT": decimal.NewFromFloat(0.10),
	"NL": decimal.NewFromFloat(0.09),
	"BE": decimal.NewFromFloat(0.06),
	"CH": decimal.NewFromFloat(0.038),
	"AD": decimal.NewFromFloat(0.038),
	"GB": decimal.NewFromFloat(0.20),
	"IE": decimal.NewFromFloat(0.135),
	"GR": decimal.NewFromFloat(0.13),
}

// GetVATRate looks up the VAT rate for a country and service type.
// Unknown countries get DefaultVATRate. Pure function; the table is
// static configuration, not data the rest of the system can mutate.
func GetVATRate(country, serviceType string) decimal.Decimal {
	// serviceType is accepted for interface stability; only
	// accommodation rates are tabulated today.
	_ = serviceType

	code := strings.ToUpper(strings.TrimSpace(country))
	if rate, ok := accommodationRates[code]; ok {
		return rate
	}
	return DefaultVATRate
}

// DecomposeGross splits a VAT-inclusive gross amount into its net and
// tax parts: net = gross / (1 + rate), tax = gross - net. The parts are
// returned unrounded so that net + tax reproduces gross exactly;
// callers round for display only.
func DecomposeGross(gross, rate decimal.Decimal) (net, tax decimal.Decimal) {
	net = gross.Div(decimal.NewFromInt(1).Add(rate))
	tax = gross.Sub(net)
	return net, tax
}
