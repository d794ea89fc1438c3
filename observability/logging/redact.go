package logging

import (
	"log/slog"
	"sort"
	"strings"
)

// RedactedValue is the canonical placeholder for sensitive fields.
const RedactedValue = "[REDACTED]"

// Fields TokenCore logging touches that may be sensitive: raw request
// bodies carrying amounts/addresses are logged deliberately at the
// gateway boundary (allowlisted); everything else defaults to redacted,
// which in practice means bearer tokens and signing material never
// logged through MaskField survive unmasked.
var redactionAllowlist = map[string]struct{}{
	"service":    {},
	"env":        {},
	"message":    {},
	"severity":   {},
	"timestamp":  {},
	"error":      {},
	"reason":     {},
	"component":  {},
	"caller":     {},
	"entryPoint": {},
	"eventType":  {},
}

// IsAllowlisted reports whether key is exempt from automatic redaction.
func IsAllowlisted(key string) bool {
	key = strings.TrimSpace(key)
	for allowed := range redactionAllowlist {
		if strings.EqualFold(allowed, key) {
			return true
		}
	}
	return false
}

// RedactionAllowlist returns a sorted copy of the allowlisted keys.
func RedactionAllowlist() []string {
	keys := make([]string, 0, len(redactionAllowlist))
	for key := range redactionAllowlist {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MaskValue returns the canonical redacted placeholder for a non-empty value.
func MaskValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return value
	}
	return RedactedValue
}

// MaskField returns a slog.Attr that redacts value unless key is allowlisted.
func MaskField(key, value string) slog.Attr {
	if strings.TrimSpace(value) == "" || IsAllowlisted(key) {
		return slog.String(key, value)
	}
	return slog.String(key, RedactedValue)
}
