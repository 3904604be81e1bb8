package constants

import "caribcart-client/internal/core/domain"

// Platforms a listing can be hosted on.
var Platforms = []string{
	"Youtube",
	"Instagram",
	"TikTok",
	"Facebook",
	"X",
	"Twitch",
}

// Niches
var Niches = []string{
	"Lifestyle",
	"Gaming",
	"Cooking",
	"Music",
	"Comedy",
	"Education",
	"Fitness",
	"Travel",
	"Fashion & Beauty",
	"Tech",
}

// Audience age ranges
var AgeRanges = []string{
	"13-17",
	"18-24",
	"25-34",
	"35-44",
	"45+",
}

// ReferenceCountry fixes the currency every price is edited in. Stored
// prices stay denominated in the listing's own country.
const ReferenceCountry = "Trinidad & Tobago"

// countries lists the marketplace countries with their currency metadata.
// USDRate is local currency per US dollar.
var countries = []domain.Country{
	{Name: "Trinidad & Tobago", Region: "TT", CurrencyCode: "TTD", USDRate: 6.75},
	{Name: "Jamaica", Region: "JM", CurrencyCode: "JMD", USDRate: 155.0},
	{Name: "Barbados", Region: "BB", CurrencyCode: "BBD", USDRate: 2.0},
	{Name: "Bahamas", Region: "BS", CurrencyCode: "BSD", USDRate: 1.0},
	{Name: "Guyana", Region: "GY", CurrencyCode: "GYD", USDRate: 209.0},
	{Name: "Grenada", Region: "GD", CurrencyCode: "XCD", USDRate: 2.70},
	{Name: "Saint Lucia", Region: "LC", CurrencyCode: "XCD", USDRate: 2.70},
	{Name: "Dominican Republic", Region: "DO", CurrencyCode: "DOP", USDRate: 59.0},
	{Name: "United States", Region: "US", CurrencyCode: "USD", USDRate: 1.0},
	{Name: "Canada", Region: "CA", CurrencyCode: "CAD", USDRate: 1.36},
	{Name: "United Kingdom", Region: "GB", CurrencyCode: "GBP", USDRate: 0.79},
}

// Countries returns the marketplace country list in display order.
func Countries() []domain.Country {
	out := make([]domain.Country, len(countries))
	copy(out, countries)
	return out
}

// CountryNames returns just the display names, for select inputs.
func CountryNames() []string {
	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = c.Name
	}
	return names
}

// CountryByName looks a country up by its display name.
func CountryByName(name string) (domain.Country, bool) {
	for _, c := range countries {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Country{}, false
}

// CountryByRegion looks a country up by its ISO 3166-1 alpha-2 region code.
func CountryByRegion(region string) (domain.Country, bool) {
	for _, c := range countries {
		if c.Region == region {
			return c, true
		}
	}
	return domain.Country{}, false
}

// DefaultCredentialFields seeds the credential submission form. The set is
// user-extensible.
func DefaultCredentialFields() []domain.FormField {
	return []domain.FormField{
		{Type: "email", Name: "Email"},
		{Type: "password", Name: "Password"},
	}
}

// WithdrawalAccountFields returns the fixed bank-detail field set of a
// withdrawal request.
func WithdrawalAccountFields() []domain.FormField {
	return []domain.FormField{
		{Type: "text", Name: "Account Holder Name"},
		{Type: "text", Name: "Bank Name"},
		{Type: "number", Name: "Account Number"},
		{Type: "text", Name: "Account Type"},
		{Type: "text", Name: "SWIFT"},
		{Type: "text", Name: "Branch"},
	}
}
