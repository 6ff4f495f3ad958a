package domain

import "strings"

// DefaultLanguage is assigned to new users
const DefaultLanguage = "en"

// NormalizeLanguage lowercases a user-supplied language code and checks
// that it looks like a tag the dictionary API accepts (e.g. "en", "pt-BR").
func NormalizeLanguage(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if len(code) < 2 || len(code) > 8 {
		return "", false
	}

	base, region, hasRegion := strings.Cut(code, "-")
	if !isLetters(base) || len(base) > 3 {
		return "", false
	}
	if !hasRegion {
		return strings.ToLower(base), true
	}
	if len(region) != 2 || !isLetters(region) {
		return "", false
	}
	return strings.ToLower(base) + "-" + strings.ToUpper(region), true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
