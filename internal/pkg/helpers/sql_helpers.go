package helpers

import "strings"

// Ptr returns a pointer to v. Used to fill optional entity fields.
func Ptr[T any](v T) *T {
	return &v
}

// StringOrNil converts an empty (or blank) string to nil, the way an absent
// optional column is represented in the entities.
func StringOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// IDOrNil maps the "0 means none" convention of the script and menu inputs to nil.
func IDOrNil(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

// Deref returns the pointed-to value or the zero value when p is nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
