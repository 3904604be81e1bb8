package currency

import (
	"fmt"
	"math"
	"os"
	"strings"

	"caribcart-client/internal/constants"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Convert translates an amount between the currencies of two marketplace
// countries, going through USD with the table rates. The result is rounded
// half away from zero to two decimals, so a convert-and-convert-back round
// trip reproduces the original amount within rounding tolerance.
func Convert(amount float64, fromCountry, toCountry string) (float64, error) {
	from, ok := constants.CountryByName(fromCountry)
	if !ok {
		return 0, fmt.Errorf("unknown country %q", fromCountry)
	}
	to, ok := constants.CountryByName(toCountry)
	if !ok {
		return 0, fmt.Errorf("unknown country %q", toCountry)
	}
	if from.Name == to.Name {
		return round2(amount), nil
	}

	usd := amount / from.USDRate
	return round2(usd * to.USDRate), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format renders an amount with the ISO code of the country's currency,
// e.g. "TTD 5,000.00".
func Format(amount float64, countryName string) string {
	c, ok := constants.CountryByName(countryName)
	if !ok {
		return fmt.Sprintf("%.2f", amount)
	}
	unit, err := currency.ParseISO(c.CurrencyCode)
	if err != nil {
		return fmt.Sprintf("%s %.2f", c.CurrencyCode, amount)
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v %.2f", unit, amount)
}

// UserCountry resolves the user's marketplace country. An explicit override
// wins; otherwise the locale environment is consulted; the reference
// country is the fallback.
func UserCountry(override string) string {
	if override != "" {
		if c, ok := constants.CountryByName(override); ok {
			return c.Name
		}
	}

	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if name, ok := countryFromLocale(os.Getenv(key)); ok {
			return name
		}
	}

	return constants.ReferenceCountry
}

// countryFromLocale maps a locale string such as "en_TT.UTF-8" to a
// marketplace country through its region subtag.
func countryFromLocale(locale string) (string, bool) {
	locale = strings.TrimSpace(locale)
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "", false
	}
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", false
	}
	region, conf := tag.Region()
	if conf == language.No {
		return "", false
	}
	country, found := constants.CountryByRegion(region.String())
	if !found {
		return "", false
	}
	return country.Name, true
}
