// Package redact strips sensitive material from strings before they reach
// the logs: connection strings, bcrypt hashes, JWTs, passwords, and email
// addresses. Error responses never carry raw errors, but log lines do, and
// those must not leak credentials either.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredential = "[REDACTED_CREDENTIAL]"
	RedactedToken      = "[REDACTED_TOKEN]"
	RedactedEmail      = "[REDACTED_EMAIL]"
)

var (
	// Database connection strings with inline credentials
	dbConnRegex = regexp.MustCompile(`(?i)postgres(?:ql)?://[^@\s]+@`)

	// password=... / password: ... fragments
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// bcrypt hashes ($2a$, $2b$, $2y$ prefixes)
	bcryptRegex = regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)

	// Standard three-part base64url-encoded JWTs
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String returns a copy of s with sensitive fragments replaced by placeholders.
func String(s string) string {
	s = dbConnRegex.ReplaceAllString(s, RedactedCredential+"@")
	s = passwordRegex.ReplaceAllString(s, "$1$2"+RedactedCredential)
	s = bcryptRegex.ReplaceAllString(s, RedactedCredential)
	s = jwtTokenRegex.ReplaceAllString(s, RedactedToken)
	s = emailRegex.ReplaceAllString(s, RedactedEmail)
	return s
}

// Error returns the redacted message of err, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
