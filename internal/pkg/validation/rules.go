package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - requires an "@"-delimited domain part
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Course code pattern - letters followed by digits, e.g. CS101
	CourseCodePattern = `^[A-Za-z]{2,8}[0-9]{2,4}$`

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	CourseCode *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// IsValidEmail checks whether the value looks like an email address with a
// domain after the "@".
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidCourseCode checks a course code against the letters-then-digits
// pattern, e.g. CS101.
func IsValidCourseCode(code string) bool {
	return CompiledPatterns.CourseCode.MatchString(strings.TrimSpace(code))
}

// IsValidName checks a person name against the length bounds.
func IsValidName(name string) bool {
	name = strings.TrimSpace(name)
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}
