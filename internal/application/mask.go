package application

import "strings"

// MaskEmail reduces the local part to its first two characters followed by a
// '*' per remaining character; the domain is untouched. Local parts of two
// characters or fewer stay as-is, an empty input yields a placeholder, and a
// string without '@' is masked as one local part.
func MaskEmail(email string) string {
	if email == "" {
		return "<empty>"
	}
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return maskPlain(email)
	}
	return maskPlain(email[:at]) + "@" + email[at+1:]
}

func maskPlain(s string) string {
	r := []rune(s)
	if len(r) <= 2 {
		return s
	}
	return string(r[:2]) + strings.Repeat("*", len(r)-2)
}
