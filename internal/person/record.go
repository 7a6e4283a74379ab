// Package person defines the synthetic person record and its generator.
//
// Every field carries a fixed tag prefix followed by a uniform integer, so
// datasets are self-describing: a row can be validated without knowing the
// seed that produced it.
package person

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NumColumns is the number of fields in a serialized record row
const NumColumns = 6

// DateFormat is the calendar-date layout used for the first column
const DateFormat = "2006-01-02"

// DateSpanDays is the inclusive upper bound of the day offset added to Epoch
const DateSpanDays = 8000

// Epoch is the earliest generatable date. The latest is Epoch plus
// DateSpanDays whole days (2021-11-26).
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Field tag prefixes and the inclusive upper bound of their integer suffix.
// The lower bound is always 1.
const (
	NamePrefix       = "Name"
	SurnamePrefix    = "Surname"
	PatronymicPrefix = "Patronymic"
	CityPrefix       = "City"
	CountryPrefix    = "Country"

	NameMax    = 1_000_000
	CityMax    = 1_000
	CountryMax = 100
)

var (
	ErrColumnCount  = errors.New("wrong number of columns")
	ErrBadDate      = errors.New("malformed date")
	ErrDateRange    = errors.New("date out of range")
	ErrFieldPattern = errors.New("malformed field")
	ErrFieldRange   = errors.New("field value out of range")
)

// Record is one synthetic person
type Record struct {
	Date       time.Time
	FirstName  string
	LastName   string
	Patronymic string
	City       string
	Country    string
}

// Fields returns the six columns in serialization order
func (r Record) Fields() []string {
	return []string{
		r.Date.Format(DateFormat),
		r.FirstName,
		r.LastName,
		r.Patronymic,
		r.City,
		r.Country,
	}
}

// ValidateFields checks a serialized row against the record contract: six
// columns, a date within [Epoch, Epoch+DateSpanDays], and tagged integers
// within their documented bounds.
func ValidateFields(fields []string) error {
	if len(fields) != NumColumns {
		return fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(fields), NumColumns)
	}

	date, err := time.Parse(DateFormat, fields[0])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadDate, fields[0])
	}
	if date.Before(Epoch) || date.After(Epoch.AddDate(0, 0, DateSpanDays)) {
		return fmt.Errorf("%w: %q", ErrDateRange, fields[0])
	}

	checks := []struct {
		prefix string
		max    int
	}{
		{NamePrefix, NameMax},
		{SurnamePrefix, NameMax},
		{PatronymicPrefix, NameMax},
		{CityPrefix, CityMax},
		{CountryPrefix, CountryMax},
	}
	for i, c := range checks {
		if err := validateTagged(fields[i+1], c.prefix, c.max); err != nil {
			return err
		}
	}
	return nil
}

// validateTagged checks that s is prefix followed by a decimal integer in
// [1, max]
func validateTagged(s, prefix string, max int) error {
	suffix, ok := strings.CutPrefix(s, prefix)
	if !ok || suffix == "" {
		return fmt.Errorf("%w: %q does not match %s<n>", ErrFieldPattern, s, prefix)
	}
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %q does not match %s<n>", ErrFieldPattern, s, prefix)
		}
	}
	// a digits-only suffix that overflows int is out of range, not malformed
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 || n > max {
		return fmt.Errorf("%w: %q outside [1, %d]", ErrFieldRange, s, max)
	}
	return nil
}
