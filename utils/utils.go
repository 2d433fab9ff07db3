package utils

import "fmt"

func Ptr[T any](v T) *T {
	return &v
}

// Format renders a possibly-nil pointer for display, empty when nil.
func Format[T any](ptr *T) string {
	if ptr == nil {
		return ""
	}
	return fmt.Sprintf("%v", *ptr)
}
