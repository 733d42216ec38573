// Package env reads raw process environment variables for the few settings
// resolved before or outside the envconfig-backed configuration.
package env

import "os"

// Get returns the named variable's value, or fallback when it is unset or
// empty.
func Get(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
