package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Person names: letters, spaces, apostrophes and hyphens
	PersonNamePattern = `^\p{L}[\p{L} '\-]*$`

	// Group names such as "IP-11" or "KN 21"
	GroupNamePattern = `^[\p{L}\d][\p{L}\d \-]*$`

	NameMaxLength      = 100
	GroupNameMaxLength = 50
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	PersonName *regexp.Regexp
	GroupName  *regexp.Regexp
}{
	PersonName: regexp.MustCompile(PersonNamePattern),
	GroupName:  regexp.MustCompile(GroupNamePattern),
}

// Tags registered on the validator
const (
	PersonNameTag = "personname"
	GroupNameTag  = "groupname"
)

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length, counted in characters
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	n := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && n < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && n > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// IsPersonName reports whether s is a usable first or last name
func IsPersonName(s string) bool {
	return NewStringValidation(s).
		WithMaxLength(NameMaxLength).
		WithPattern(CompiledPatterns.PersonName).
		Validate()
}

// IsGroupName reports whether s is a usable group name
func IsGroupName(s string) bool {
	return NewStringValidation(s).
		WithMaxLength(GroupNameMaxLength).
		WithPattern(CompiledPatterns.GroupName).
		Validate()
}

// Register adds the grade book rules to v. Empty values pass, "required"
// decides about presence.
func Register(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		PersonNameTag: IsPersonName,
		GroupNameTag:  IsGroupName,
	}
	for tag, rule := range rules {
		rule := rule
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || rule(s)
		})
		if err != nil {
			return fmt.Errorf("registering %s validation: %w", tag, err)
		}
	}
	return nil
}
