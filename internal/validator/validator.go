// Package validator accumulates field-level validation errors so handlers
// can report every failing field of a request body in one response.
package validator

import "regexp"

// EmailRX is a compiled regular expression for basic email validation.
var EmailRX = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Validator holds a map of field names to their validation error messages.
// A Validator with an empty Errors map is considered valid.
type Validator struct {
	Errors map[string]string
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if no field has failed.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message. The first failure
// recorded for a field wins.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error for key with message only when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// In returns true if value is present in list.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}

// Matches returns true if value matches the compiled regexp.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}
