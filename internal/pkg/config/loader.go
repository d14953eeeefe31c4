// Package config provides environment-variable configuration loading with
// validation and fallback-to-default semantics. Loading never fails hard:
// an invalid value produces a warning and the default, so a misconfigured
// environment degrades instead of crashing.
package config

import (
	"fmt"
	"os"
)

// LoadResult represents the result of loading a configuration value.
// It contains the loaded value, any warnings generated during loading,
// and a flag indicating whether the default was used because the
// supplied value failed validation.
type LoadResult struct {
	Value           string
	Warnings        []string
	FallbackApplied bool
}

// LoadEnvString loads a string value from an environment variable.
// If the environment variable is not set, the default value is returned.
// No validation is performed.
func LoadEnvString(envKey, defaultValue string) string {
	value := os.Getenv(envKey)
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadEnvWithFallback loads a string value from an environment variable,
// validating it with the provided validator (nil skips validation).
// An unset or empty variable yields the default with no warning; a set
// value that fails validation yields the default plus a warning.
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) LoadResult {
	value := os.Getenv(envKey)
	if value == "" {
		return LoadResult{Value: defaultValue}
	}

	if validator != nil {
		if err := validator(value); err != nil {
			warning := fmt.Sprintf(
				"Invalid %s='%s': %v, falling back to default '%s'",
				envKey, value, err, defaultValue,
			)
			return LoadResult{
				Value:           defaultValue,
				Warnings:        []string{warning},
				FallbackApplied: true,
			}
		}
	}

	return LoadResult{Value: value}
}
