package domain

import "time"

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// CoalesceTime returns the first non-nil *time.Time from ptrs, or nil.
func CoalesceTime(ptrs ...*time.Time) *time.Time {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}
