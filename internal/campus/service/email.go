package service

import (
	"net/mail"
	"strings"
)

// DefaultEmailSuffixes are the institutional domain suffixes accepted at signup.
var DefaultEmailSuffixes = []string{"edu", "ac.in"}

// EmailPolicy decides whether an address belongs to an academic institution.
type EmailPolicy struct {
	Suffixes []string
}

// NewEmailPolicy normalises suffixes (trim, lower-case, strip leading dots).
// An empty list falls back to DefaultEmailSuffixes.
func NewEmailPolicy(suffixes []string) EmailPolicy {
	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		s = strings.Trim(strings.ToLower(strings.TrimSpace(s)), ".")
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		out = append(out, DefaultEmailSuffixes...)
	}
	return EmailPolicy{Suffixes: out}
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Allows reports whether email is "local@domain" where domain has at least
// one label before an accepted suffix (student@college.edu, a@cs.iitb.ac.in).
func (p EmailPolicy) Allows(email string) bool {
	email = NormalizeEmail(email)

	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return false
	}

	domain := email[at+1:]
	for _, suffix := range p.Suffixes {
		label, ok := strings.CutSuffix(domain, "."+suffix)
		if ok && validLabels(label) {
			return true
		}
	}
	return false
}

func validLabels(s string) bool {
	if s == "" {
		return false
	}
	for label := range strings.SplitSeq(s, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
				return false
			}
		}
	}
	return true
}
