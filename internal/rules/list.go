package rules

import "strings"

// ParseList splits a comma-separated config value into lowercase, trimmed,
// non-empty tokens. Order and duplicates are preserved.
func ParseList(value string) []string {
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
