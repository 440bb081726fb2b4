package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const maxSanitizePasses = 4

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips every HTML element from user supplied text and trims it. Entities
// are decoded for storage, so the decoded text is stripped again until it is stable;
// markup hidden behind one or more levels of escaping never survives.
func Sanitize(s string) string {
	clean := s
	for range maxSanitizePasses {
		next := html.UnescapeString(strictPolicy.Sanitize(clean))
		if next == clean {
			return strings.TrimSpace(clean)
		}
		clean = next
	}

	// Still changing after every pass: keep the escaped form.
	return strings.TrimSpace(strictPolicy.Sanitize(clean))
}

func SanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}

	clean := Sanitize(*s)
	return &clean
}
