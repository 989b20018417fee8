package domain

import "strings"

// CoalesceStr returns the first non-blank string from vals, trimmed.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
