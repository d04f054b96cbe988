package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,4}$`

	// Student identifier pattern - alphanumeric, 4 to 20 characters
	IdentifierPattern = `^[A-Za-z0-9]{4,20}$`

	// Password min length
	PasswordMinLength = 6

	// CGPA bounds
	CGPAMin = 0.0
	CGPAMax = 10.0
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	Identifier *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	Identifier: regexp.MustCompile(IdentifierPattern),
}

// ValidCGPA reports whether a CGPA value is inside the portal's grading scale
func ValidCGPA(value float64) bool {
	return value >= CGPAMin && value <= CGPAMax
}
