package input

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/libcat/pkg/core"
)

// NonEmpty rejects empty and whitespace-only lines.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// YesNo accepts "yes" or "no" in any letter case.
func YesNo(s string) bool {
	return IsYes(s) || strings.EqualFold(s, "no")
}

// IsYes reports whether s is "yes" in any letter case.
func IsYes(s string) bool {
	return strings.EqualFold(s, "yes")
}

// OneOf accepts exactly one of the given options.
func OneOf(options ...string) func(string) bool {
	return func(s string) bool {
		for _, o := range options {
			if s == o {
				return true
			}
		}
		return false
	}
}

// All accepts a line only when every check accepts it.
func All(checks ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, check := range checks {
			if !check(s) {
				return false
			}
		}
		return true
	}
}

// Unique accepts a key that no item in items already has.
// key extracts the compared value from an item.
func Unique[T any, K comparable](items []T, key func(T) K) func(K) bool {
	return func(candidate K) bool {
		for _, item := range items {
			if key(item) == candidate {
				return false
			}
		}
		return true
	}
}

var (
	lettersRe = regexp.MustCompile(`[a-zA-Z]`)
	digitsRe  = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
)

// Letters requires (include=true) or forbids (include=false) ASCII letters.
func Letters(include bool) func(string) bool {
	return presence(lettersRe, include)
}

// Digits requires or forbids decimal digits.
func Digits(include bool) func(string) bool {
	return presence(digitsRe, include)
}

// Special requires or forbids characters that are neither alphanumeric nor whitespace.
func Special(include bool) func(string) bool {
	return presence(specialRe, include)
}

func presence(re *regexp.Regexp, include bool) func(string) bool {
	return func(s string) bool {
		return re.MatchString(s) == include
	}
}

// ErrOutOfRange is returned by parsers when a well-formed value is not allowed.
var ErrOutOfRange = errors.New("value out of range")

// DateParser parses a date with the first of layouts that matches.
// With no layouts it uses core.ISODate.
func DateParser(layouts ...string) func(string) (core.Date, error) {
	if len(layouts) == 0 {
		layouts = []string{core.ISODate}
	}
	return func(s string) (core.Date, error) {
		var errs []error
		for _, layout := range layouts {
			d, err := core.ParseDate(layout, s)
			if err == nil {
				return d, nil
			}
			errs = append(errs, err)
		}
		return core.Date{}, errors.Join(errs...)
	}
}

// NotAfter rejects dates later than limit.
func NotAfter(limit core.Date) func(core.Date) error {
	return func(d core.Date) error {
		if d.After(limit) {
			return fmt.Errorf("%s is after %s: %w", d, limit, ErrOutOfRange)
		}
		return nil
	}
}

// NotBefore rejects dates earlier than limit.
func NotBefore(limit core.Date) func(core.Date) error {
	return func(d core.Date) error {
		if d.Before(limit) {
			return fmt.Errorf("%s is before %s: %w", d, limit, ErrOutOfRange)
		}
		return nil
	}
}

// Then runs checks on the value produced by parse.
func Then[T any](parse func(string) (T, error), checks ...func(T) error) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := parse(s)
		if err != nil {
			return v, err
		}
		for _, check := range checks {
			if err := check(v); err != nil {
				var zero T
				return zero, err
			}
		}
		return v, nil
	}
}

// IntIn parses a base 10 integer that must be one of allowed.
// Surrounding whitespace is ignored.
func IntIn(allowed ...int) func(string) (int, error) {
	return func(s string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, err
		}
		for _, a := range allowed {
			if n == a {
				return n, nil
			}
		}
		return 0, fmt.Errorf("%d: %w", n, ErrOutOfRange)
	}
}

// Choice parses an index and returns the value stored under it in choices.
func Choice[C any](choices map[int]C) func(string) (C, error) {
	return func(s string) (C, error) {
		var zero C
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return zero, err
		}
		v, ok := choices[n]
		if !ok {
			return zero, fmt.Errorf("%d: %w", n, ErrOutOfRange)
		}
		return v, nil
	}
}
