// Package validation checks project and package names against the two
// naming conventions the scaffolder enforces: Train-Case for the project
// root directory and snake_case for the Python package. Validation happens
// before any filesystem operation so a bad name never leaves state behind.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameKind identifies which naming convention a NamingError refers to.
type NameKind string

const (
	// KindProjectName marks a Train-Case violation.
	KindProjectName NameKind = "project name"

	// KindPackageName marks a snake_case violation.
	KindPackageName NameKind = "package name"
)

// NamingError describes a naming convention violation. Reason names the
// violated rule, Suggestion (when derivable) is the normalized form the
// user probably meant.
type NamingError struct {
	Kind       NameKind
	Name       string
	Reason     string
	Suggestion string
}

// Error implements the error interface.
func (e *NamingError) Error() string {
	msg := fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Name, e.Reason)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

var (
	// Train-Case: alphanumeric words, each starting with an uppercase
	// letter, joined by single hyphens.
	trainCasePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*(-[A-Z][a-zA-Z0-9]*)*$`)

	// snake_case: lowercase alphanumeric words joined by single
	// underscores; the whole string must not start with a digit so it
	// stays a valid Python identifier.
	snakeCasePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
)

// ValidateProjectName checks that name is Train-Case (e.g. "My-Project").
func ValidateProjectName(name string) error {
	if trainCasePattern.MatchString(name) {
		return nil
	}
	return &NamingError{
		Kind:       KindProjectName,
		Name:       name,
		Reason:     trainCaseViolation(name),
		Suggestion: suggestTrainCase(name),
	}
}

// ValidatePackageName checks that name is snake_case (e.g. "my_package")
// and usable as a Python identifier.
func ValidatePackageName(name string) error {
	if snakeCasePattern.MatchString(name) {
		return nil
	}
	return &NamingError{
		Kind:       KindPackageName,
		Name:       name,
		Reason:     snakeCaseViolation(name),
		Suggestion: suggestSnakeCase(name),
	}
}

// trainCaseViolation names the first Train-Case rule the input breaks.
func trainCaseViolation(name string) string {
	switch {
	case name == "":
		return "name must not be empty"
	case strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-"):
		return "hyphens must not lead or trail the name"
	case strings.Contains(name, "--"):
		return "words must be joined by single hyphens"
	}
	if c, ok := firstDisallowed(name, func(r rune) bool {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-'
	}); ok {
		return fmt.Sprintf("character %q is not allowed", c)
	}
	return "every hyphen-separated word must start with an uppercase letter"
}

// snakeCaseViolation names the first snake_case rule the input breaks.
func snakeCaseViolation(name string) string {
	switch {
	case name == "":
		return "name must not be empty"
	case strings.HasPrefix(name, "_") || strings.HasSuffix(name, "_"):
		return "underscores must not lead or trail the name"
	case strings.Contains(name, "__"):
		return "words must be joined by single underscores"
	}
	if c, ok := firstDisallowed(name, func(r rune) bool {
		return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_'
	}); ok {
		if unicode.IsUpper(c) {
			return "uppercase letters are not allowed"
		}
		return fmt.Sprintf("character %q is not allowed", c)
	}
	return "name must not start with a digit"
}

// firstDisallowed returns the first rune rejected by allowed.
func firstDisallowed(name string, allowed func(rune) bool) (rune, bool) {
	for _, r := range name {
		if !allowed(r) {
			return r, true
		}
	}
	return 0, false
}

// suggestTrainCase normalizes name the way the scaffolder's predecessors
// auto-fixed sloppy input: lowercase everything, split on separators,
// title-case each word, rejoin with hyphens. Returns "" when no valid
// distinct form can be derived.
func suggestTrainCase(name string) string {
	title := cases.Title(language.Und)
	words := splitWords(name)
	for i, w := range words {
		words[i] = title.String(strings.ToLower(w))
	}
	candidate := strings.Join(words, "-")
	if candidate == name || !trainCasePattern.MatchString(candidate) {
		return ""
	}
	return candidate
}

// suggestSnakeCase lowercases name and rejoins its words with single
// underscores. Returns "" when no valid distinct form can be derived.
func suggestSnakeCase(name string) string {
	words := splitWords(strings.ToLower(name))
	candidate := strings.Join(words, "_")
	if candidate == name || !snakeCasePattern.MatchString(candidate) {
		return ""
	}
	return candidate
}

func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
}
