// Package validation provides request validation helpers. Validators collect
// every field error so handlers can report the first (or all) of them.
package validation

import (
	"regexp"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validator collects field validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string field is non-empty after trimming.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "is required")
}

// Email validates email format.
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "must be a valid email address")
}

// Date validates a 2006-01-02 date string.
func (v *Validator) Date(field, value string) {
	if strings.TrimSpace(value) == "" {
		return // Required reports the empty case
	}
	_, err := time.Parse("2006-01-02", value)
	v.Check(err == nil, field, "must be a date in YYYY-MM-DD format")
}

// First returns one error message, for responses reporting a single failure.
func (v *Validator) First() string {
	for field, msg := range v.Errors {
		return field + " " + msg
	}
	return ""
}
