package validation

import (
	"time"
)

func StringPtr(s string) *string {
	return &s
}

func StringPtrValue(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func BoolPtr(b bool) *bool {
	return &b
}

// CloneStringPtr returns a pointer to a copy of *s, or nil.
func CloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// CloneTimePtr returns a pointer to a copy of *t, or nil.
func CloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
