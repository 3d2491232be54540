// Package validate holds the recipient address check applied before any
// message is built.
package validate

import (
	"regexp"
	"strings"
)

// DefaultDomain is the only domain accepted unless configured otherwise.
const DefaultDomain = "gmail.com"

// Validator accepts addresses of the form local@Domain, where the local part
// uses letters, digits and . _ % + -. There is no DNS or mailbox check; an
// unusual but deliverable address may be rejected.
type Validator struct {
	domain string
	re     *regexp.Regexp
}

// New returns a validator for domain. The domain is matched literally.
func New(domain string) *Validator {
	return &Validator{
		domain: domain,
		re:     regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@` + regexp.QuoteMeta(domain) + `$`),
	}
}

// Domain returns the accepted domain.
func (v *Validator) Domain() string {
	return v.domain
}

// IsValidAddress reports whether s, trimmed, is a non-empty address in the
// accepted domain.
func (v *Validator) IsValidAddress(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return v.re.MatchString(s)
}

var defaultValidator = New(DefaultDomain)

// IsValidAddress checks s against DefaultDomain.
func IsValidAddress(s string) bool {
	return defaultValidator.IsValidAddress(s)
}
