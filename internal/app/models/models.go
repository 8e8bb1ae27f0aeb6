package models

import (
	"fmt"
	"strconv"
)

// Entities carry a store generated surrogate key. ID 0 means the record has
// not been inserted yet. Optional columns are pointers: nil is SQL NULL.

func optInt(v *int) string {
	if v == nil {
		return "null"
	}
	return strconv.Itoa(*v)
}

func optID(v *int64) string {
	if v == nil {
		return "null"
	}
	return strconv.FormatInt(*v, 10)
}

func optString(v *string) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%q", *v)
}
