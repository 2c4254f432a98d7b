package util

import (
	"regexp"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// supportedCurrencies is the closed set of profile currencies.
var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"JPY": true,
	"CAD": true,
	"AUD": true,
	"CHF": true,
	"CNY": true,
	"INR": true,
	"BRL": true,
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidateName(name string) bool {
	return len(name) >= 2 && len(name) <= 50
}

func ValidatePassword(password string) bool {
	return len(password) >= 6
}

func ValidateCurrency(currency string) bool {
	return supportedCurrencies[currency]
}
