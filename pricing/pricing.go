// Package pricing resolves a visitor's currency from ambient locale signals
// and owns both price tables: the display quote shown before checkout and the
// smallest-unit amounts the order service accepts.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"privacypage-api/config"
	"privacypage-api/models"
)

// ErrUnsupportedCurrency is returned when an order names a currency outside
// the supported set. Orders are rejected outright rather than silently
// repriced in USD.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// DefaultCurrency is used whenever detection fails or yields an unsupported
// value.
const DefaultCurrency = "USD"

type displayPrice struct {
	symbol string
	single float64
	bundle float64
	// decimals is a static per-currency property, not derived from the code.
	// INR displays whole amounts.
	decimals bool
}

type orderPrice struct {
	single int64
	bundle int64
}

var defaultDisplay = map[string]displayPrice{
	"INR": {symbol: "₹", single: 10, bundle: 20, decimals: false},
	"USD": {symbol: "$", single: 9.99, bundle: 24.99, decimals: true},
	"EUR": {symbol: "€", single: 9.49, bundle: 23.49, decimals: true},
	"GBP": {symbol: "£", single: 7.99, bundle: 19.99, decimals: true},
}

// defaultOrders holds the only amounts order creation will accept, in each
// currency's smallest unit.
var defaultOrders = map[string]orderPrice{
	"INR": {single: 84900, bundle: 209900},
	"USD": {single: 999, bundle: 2499},
	"EUR": {single: 949, bundle: 2349},
	"GBP": {single: 799, bundle: 1999},
}

// euTimezones mark EUR regions not covered by a more specific rule.
var euTimezones = []string{
	"Europe/Berlin", "Europe/Paris", "Europe/Rome", "Europe/Madrid",
	"Europe/Amsterdam", "Europe/Brussels", "Europe/Vienna", "Europe/Dublin",
	"Europe/Lisbon", "Europe/Helsinki", "Europe/Athens", "Europe/Warsaw",
	"Europe/Prague", "Europe/Budapest", "Europe/Bucharest", "Europe/Stockholm",
	"Europe/Oslo", "Europe/Copenhagen",
}

var euLanguages = []string{"de", "fr", "it", "es", "nl", "pt"}

// Resolver answers pricing questions. It is immutable after construction and
// safe for concurrent use.
type Resolver struct {
	display map[string]displayPrice
	orders  map[string]orderPrice
}

// NewResolver builds a Resolver from the built-in tables, applying any
// operator overrides from the config.
func NewResolver(overrides *config.PricingOverrides) *Resolver {
	r := &Resolver{
		display: make(map[string]displayPrice, len(defaultDisplay)),
		orders:  make(map[string]orderPrice, len(defaultOrders)),
	}
	for c, p := range defaultDisplay {
		r.display[c] = p
	}
	for c, p := range defaultOrders {
		r.orders[c] = p
	}
	if overrides != nil {
		for c, p := range overrides.Display {
			r.display[c] = displayPrice{symbol: p.Symbol, single: p.Single, bundle: p.Bundle, decimals: p.Decimals}
		}
		for c, p := range overrides.Orders {
			r.orders[c] = orderPrice{single: p.Single, bundle: p.Bundle}
		}
	}
	return r
}

// DetectCurrency maps timezone and language signals to a supported currency.
// It never fails; anything unrecognized resolves to the default.
func (r *Resolver) DetectCurrency(timezone, language string) string {
	tz := strings.TrimSpace(timezone)
	lang := strings.TrimSpace(language)

	if strings.HasPrefix(tz, "Asia/Calcutta") || strings.HasPrefix(tz, "Asia/Kolkata") ||
		strings.HasPrefix(lang, "hi") || lang == "en-IN" {
		return "INR"
	}
	if strings.HasPrefix(tz, "Europe/London") || lang == "en-GB" {
		return "GBP"
	}
	if strings.HasPrefix(tz, "America/") || lang == "en-US" {
		return "USD"
	}
	for _, t := range euTimezones {
		if strings.HasPrefix(tz, t) {
			return "EUR"
		}
	}
	for _, l := range euLanguages {
		if strings.HasPrefix(lang, l) {
			return "EUR"
		}
	}
	return DefaultCurrency
}

// Supported reports whether the currency has a server-side price entry.
func (r *Resolver) Supported(currency string) bool {
	_, ok := r.orders[currency]
	return ok
}

// QuoteFor returns the localized price pair for a currency. Unsupported
// currencies quote in the default currency.
func (r *Resolver) QuoteFor(currency string) models.PriceQuote {
	p, ok := r.display[currency]
	if !ok {
		currency = DefaultCurrency
		p = r.display[currency]
	}
	return models.PriceQuote{
		Currency:      currency,
		Symbol:        p.symbol,
		SinglePrice:   p.single,
		BundlePrice:   p.bundle,
		SingleDisplay: p.symbol + formatAmount(p.single, p.decimals),
		BundleDisplay: p.symbol + formatAmount(p.bundle, p.decimals),
	}
}

// Quote resolves a currency from the given signals and prices it.
func (r *Resolver) Quote(timezone, language string) models.PriceQuote {
	return r.QuoteFor(r.DetectCurrency(timezone, language))
}

// ToSmallestUnit converts a major-unit amount to the integer subunit the
// gateway expects. INR amounts are whole rupees times 100 paise; the other
// currencies round to the nearest cent to avoid floating-point drift.
func ToSmallestUnit(amount float64, currency string) int64 {
	if currency == "INR" {
		return int64(amount * 100)
	}
	return int64(math.Round(amount * 100))
}

// ExpectedAmount returns the only smallest-unit amount the server accepts
// for a (docType, currency) pair. The bundle price applies to the bundle
// purchase; pro-single and every individual document use the single price.
func (r *Resolver) ExpectedAmount(docType, currency string) (int64, error) {
	p, ok := r.orders[currency]
	if !ok {
		return 0, ErrUnsupportedCurrency
	}
	if docType == models.DocTypeBundle {
		return p.bundle, nil
	}
	return p.single, nil
}

func formatAmount(v float64, decimals bool) string {
	if decimals {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%v", v)
}
