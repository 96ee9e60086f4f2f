package domain

import "regexp"

// The request-construction boundary calls these predicates explicitly
// before anything reaches a service. They are deliberately plain functions
// rather than struct-tag metadata so the rules are greppable and testable.
var (
	cryptoNameRe   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 .\-]{0,63}$`)
	tickerRe       = regexp.MustCompile(`^[A-Za-z0-9]{1,15}$`)
	platformNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]{0,23}$`)
)

// ValidCryptoName reports whether name is an acceptable asset name
func ValidCryptoName(name string) bool {
	return cryptoNameRe.MatchString(name)
}

// ValidTicker reports whether ticker is an acceptable asset ticker
func ValidTicker(ticker string) bool {
	return tickerRe.MatchString(ticker)
}

// ValidPlatformName reports whether name is an acceptable platform name
func ValidPlatformName(name string) bool {
	return platformNameRe.MatchString(name)
}
