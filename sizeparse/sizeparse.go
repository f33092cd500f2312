// Package sizeparse converts human-readable size strings ("2GB", "500MB")
// into byte counts.
//
// Units are binary: each step multiplies by 1024 (so "2GB" == "2048MB").
// The unit set is fixed: B, KB, MB, GB, TB, with bare letters (K, M, G, T)
// accepted as aliases for their two-letter forms. A string without a unit
// is a plain byte count.
package sizeparse

import (
	"math"
	"strconv"
	"strings"

	"vsplit/errs"
)

// Unit is a size unit with a fixed binary multiplier.
type Unit int64

const (
	Byte     Unit = 1
	Kilobyte Unit = 1024 * Byte
	Megabyte Unit = 1024 * Kilobyte
	Gigabyte Unit = 1024 * Megabyte
	Terabyte Unit = 1024 * Gigabyte
)

// unitTable maps normalized unit suffixes to their multipliers.
// Bare letters alias the two-letter forms ("500M" == "500MB").
var unitTable = map[string]Unit{
	"B":  Byte,
	"KB": Kilobyte,
	"MB": Megabyte,
	"GB": Gigabyte,
	"TB": Terabyte,
	"K":  Kilobyte,
	"M":  Megabyte,
	"G":  Gigabyte,
	"T":  Terabyte,
}

// ParseSize parses a human-readable size string into a byte count.
//
// The input is a decimal number followed by an optional unit suffix,
// case-insensitive, with surrounding whitespace ignored. A leading '+'
// is accepted; negative and zero values are rejected.
//
// Examples:
//
//	ParseSize("2GB")    // 2147483648
//	ParseSize("1.5MB")  // 1572864
//	ParseSize("500M")   // 524288000
//	ParseSize("4096")   // 4096 (no unit means bytes)
//
// Returns an ErrInvalidSizeFormat error when the input has no numeric
// prefix, an unknown unit, or a non-positive value.
func ParseSize(text string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return 0, errs.Newf(errs.ErrInvalidSizeFormat, "empty size string")
	}

	// Split into numeric prefix and unit suffix
	split := len(s)
	for i, c := range s {
		if (c < '0' || c > '9') && c != '.' && !(i == 0 && c == '+') {
			split = i
			break
		}
	}

	number := s[:split]
	unit := strings.TrimSpace(s[split:])

	if number == "" || number == "+" {
		return 0, errs.Newf(errs.ErrInvalidSizeFormat, "no numeric prefix in %q", text)
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, errs.New(errs.ErrInvalidSizeFormat, "invalid number in "+strconv.Quote(text), err)
	}

	if value <= 0 {
		return 0, errs.Newf(errs.ErrInvalidSizeFormat, "size must be positive, got %q", text)
	}

	multiplier := Byte
	if unit != "" {
		m, ok := unitTable[unit]
		if !ok {
			return 0, errs.Newf(errs.ErrInvalidSizeFormat, "unknown unit %q in %q", unit, text)
		}
		multiplier = m
	}

	product := value * float64(multiplier)
	// The float-to-int conversion of an out-of-range value is
	// platform-dependent, so reject the overflow before converting.
	if product >= math.MaxInt64 {
		return 0, errs.Newf(errs.ErrInvalidSizeFormat, "size %q overflows the byte count", text)
	}

	bytes := int64(product)
	if bytes <= 0 {
		return 0, errs.Newf(errs.ErrInvalidSizeFormat, "size must be at least one byte, got %q", text)
	}

	return bytes, nil
}
