package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailFormatValid does a cheap syntactic check before hitting DNS.
func IsEmailFormatValid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsEmailDomainValid checks that the address' domain resolves (MX or A).
// Used at registration to reject obviously fake accounts.
func IsEmailDomainValid(email string) bool {
	if !IsEmailFormatValid(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
