// Package validate provides the primitive validators every request contract
// composes: opaque numeric identifiers, ISO 8601 timestamps, and a collector
// that accumulates per-field violations into a single validation error.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gong-mcp/internal/domain"
)

var (
	identifierRe = regexp.MustCompile(`^[0-9]{1,20}$`)
	// Explicit timezone is mandatory: date-only and offset-less strings are
	// rejected even though time.Parse would accept some of them.
	timestampRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})$`)
)

// Identifier accepts a string of 1-20 decimal digits. Malformed input is
// rejected, never coerced.
func Identifier(s string) error {
	if !identifierRe.MatchString(s) {
		return errors.New("must be a numeric string up to 20 digits")
	}
	return nil
}

// Timestamp accepts an ISO 8601 datetime with an explicit timezone (Z or
// ±HH:MM), with or without fractional seconds.
func Timestamp(s string) error {
	if !timestampRe.MatchString(s) {
		return errors.New("must be a valid ISO 8601 datetime with timezone")
	}
	if _, err := time.Parse(time.RFC3339, s); err != nil {
		return errors.New("must be a valid ISO 8601 datetime with timezone")
	}
	return nil
}

// Instant parses a timestamp that already passed Timestamp into an instant
// for ordering comparisons.
func Instant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FieldError is a single violation, addressed by the field path it occurred
// at.
type FieldError struct {
	Path   string
	Reason string
}

func (e FieldError) String() string {
	if e.Path == "" {
		return e.Reason
	}
	return e.Path + ": " + e.Reason
}

// Collector accumulates field violations. The zero value is ready to use.
type Collector struct {
	errs []FieldError
}

// Add records a violation at path.
func (c *Collector) Add(path, reason string) {
	c.errs = append(c.errs, FieldError{Path: path, Reason: reason})
}

// Required checks a mandatory string field.
func (c *Collector) Required(path, value string, fn func(string) error) {
	if value == "" {
		c.Add(path, "is required")
		return
	}
	if err := fn(value); err != nil {
		c.Add(path, err.Error())
	}
}

// Optional checks a string field only when it was supplied.
func (c *Collector) Optional(path, value string, fn func(string) error) {
	if value == "" {
		return
	}
	if err := fn(value); err != nil {
		c.Add(path, err.Error())
	}
}

// Each checks every element of a string array, reporting violations with
// indexed paths.
func (c *Collector) Each(path string, values []string, fn func(string) error) {
	for i, v := range values {
		if err := fn(v); err != nil {
			c.Add(fmt.Sprintf("%s[%d]", path, i), err.Error())
		}
	}
}

// IntRange checks an inclusive numeric bound on both ends.
func (c *Collector) IntRange(path string, value, lo, hi int) {
	if value < lo || value > hi {
		c.Add(path, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
}

// Min checks an inclusive lower numeric bound.
func (c *Collector) Min(path string, value, lo int) {
	if value < lo {
		c.Add(path, fmt.Sprintf("must be at least %d", lo))
	}
}

// DateOrder enforces from < to, compared as instants. It only applies when
// both values are present and individually valid; individual violations are
// reported by the per-field checks, not duplicated here.
func (c *Collector) DateOrder(from, to string) {
	if from == "" || to == "" {
		return
	}
	f, errF := Instant(from)
	t, errT := Instant(to)
	if errF != nil || errT != nil {
		return
	}
	if !f.Before(t) {
		c.errs = append(c.errs, FieldError{Reason: "fromDateTime must be before toDateTime"})
	}
}

// Err returns nil when no violation was recorded, otherwise a validation
// error enumerating every violation in the order it was recorded.
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	parts := make([]string, len(c.errs))
	for i, e := range c.errs {
		parts[i] = e.String()
	}
	return domain.NewValidationError(strings.Join(parts, "; "))
}
