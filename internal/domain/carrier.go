package domain

import (
	"errors"
	"strings"
)

// ErrInvalidMCNumber indicates the caller-supplied MC number cannot be
// reduced to a numeric registry key.
var ErrInvalidMCNumber = errors.New("invalid MC number format")

// CarrierValidation is the outcome of checking one MC number against the
// carrier registry. IsValid is true only when the registry affirmatively
// confirms the carrier may operate; every ambiguous or failed lookup is
// reported as invalid with Detail explaining why.
type CarrierValidation struct {
	MCNumber        string
	IsValid         bool
	Detail          string
	LegalName       string
	DBAName         string
	DOTNumber       string
	OperatingStatus string
	SafetyRating    string
	PhysicalState   string
}

// NormalizeMCNumber reduces a caller-supplied MC number ("MC123456",
// "mc 123456", "123456") to its bare digits. The registry keys carriers
// by the numeric part only.
func NormalizeMCNumber(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "MC")
	s = strings.ReplaceAll(s, " ", "")

	if s == "" {
		return "", ErrInvalidMCNumber
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return "", ErrInvalidMCNumber
		}
	}

	return s, nil
}
