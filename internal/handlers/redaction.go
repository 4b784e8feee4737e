package handlers

import "strings"

// Waitlist signups are PII; only redacted forms ever reach the logs.

// redactEmail keeps the first rune of the local part and the full domain,
// e.g. "dev@example.com" -> "d***@example.com".
func redactEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "[redacted]"
	}

	local, domain := parts[0], parts[1]
	if local == "" {
		return "***@" + domain
	}

	runes := []rune(local)
	return string(runes[0]) + "***@" + domain
}

// redactName keeps only the first rune of a signup name.
func redactName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	runes := []rune(name)
	return string(runes[0]) + "***"
}
