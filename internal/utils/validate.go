package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// urlPattern is deliberately loose: the admin panel stores embed and map
// links from several providers, so only scheme and host shape are checked.
var urlPattern = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)

// RequireFields returns the first blank required field as an error message
// of the form "<Label> is required", or "" when all fields are present.
func RequireFields(fields map[string]string, order []string) string {
	for _, label := range order {
		if strings.TrimSpace(fields[label]) == "" {
			return fmt.Sprintf("%s is required", label)
		}
	}
	return ""
}

// ValidateURLField checks an optional URL-shaped field. Empty is allowed.
func ValidateURLField(label, value string) string {
	if value == "" {
		return ""
	}
	if !urlPattern.MatchString(value) {
		return fmt.Sprintf("%s must be a valid URL", label)
	}
	return ""
}
