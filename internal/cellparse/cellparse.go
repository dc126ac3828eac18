// Package cellparse implements C2, the scalar cell parsers: one
// func(string) (T, error) per supported scalar kind, composing into the
// Optional and Sequence combinators that the record parser factory (C3)
// drives per field.
package cellparse

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/golang-sql/civil"
	"github.com/shopspring/decimal"

	"github.com/rchillyard/tableparser/tperr"
)

// Parser converts one cell's text into a typed value, or reports a
// tperr.CellConversion failure annotated with the offending text and the
// target kind.
type Parser[T any] func(cell string) (T, error)

func conversionErr(kind, cell string) error {
	return &tperr.Error{Kind: tperr.CellConversion, Fragment: kind + ": " + cell}
}

// Int64 parses an optionally-signed run of decimal digits.
func Int64() Parser[int64] {
	return func(cell string) (int64, error) {
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return 0, conversionErr("Int64", cell)
		}
		return v, nil
	}
}

// Int32 parses an optionally-signed run of decimal digits into an int32.
func Int32() Parser[int32] {
	return func(cell string) (int32, error) {
		v, err := strconv.ParseInt(cell, 10, 32)
		if err != nil {
			return 0, conversionErr("Int32", cell)
		}
		return int32(v), nil
	}
}

// Float64 parses an IEEE-754-representable decimal (the spec's
// "Decimal" kind).
func Float64() Parser[float64] {
	return func(cell string) (float64, error) {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return 0, conversionErr("Float64", cell)
		}
		return v, nil
	}
}

// BigDecimal parses an exact-precision decimal via shopspring/decimal,
// for callers that cannot accept Float64's IEEE-754 rounding.
func BigDecimal() Parser[decimal.Decimal] {
	return func(cell string) (decimal.Decimal, error) {
		v, err := decimal.NewFromString(cell)
		if err != nil {
			return decimal.Decimal{}, conversionErr("BigDecimal", cell)
		}
		return v, nil
	}
}

// Bool parses a case-insensitive "true"/"false".
func Bool() Parser[bool] {
	return func(cell string) (bool, error) {
		switch strings.ToLower(cell) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return false, conversionErr("Bool", cell)
		}
	}
}

// String accepts any cell verbatim (quote stripping already happened in
// C1).
func String() Parser[string] {
	return func(cell string) (string, error) { return cell, nil }
}

// URL accepts any cell that parses to an absolute URL per RFC 3986.
func URL() Parser[*url.URL] {
	return func(cell string) (*url.URL, error) {
		u, err := url.ParseRequestURI(cell)
		if err != nil || !u.IsAbs() {
			return nil, conversionErr("URL", cell)
		}
		return u, nil
	}
}

// Date parses a calendar date using layout (a time.Parse-style layout
// string), realized as civil.Date rather than time.Time since tabular
// dates are calendar dates without a time zone.
func Date(layout string) Parser[civil.Date] {
	return func(cell string) (civil.Date, error) {
		d, err := civil.ParseDate(cell)
		if err == nil {
			return d, nil
		}
		// ParseDate only accepts RFC 3339 full-date; fall back to the
		// caller's layout via time.Parse semantics for other formats.
		t, perr := parseWithLayout(layout, cell)
		if perr != nil {
			return civil.Date{}, conversionErr("Date", cell)
		}
		return civil.DateOf(t), nil
	}
}

// Opt represents an optional scalar: Valid is false when the source
// cell was empty, in which case Value is the zero value of T.
type Opt[T any] struct {
	Value T
	Valid bool
}

// Optional wraps inner so an empty cell yields an absent value instead
// of delegating to inner (which would likely reject empty text).
func Optional[T any](inner Parser[T]) Parser[Opt[T]] {
	return func(cell string) (Opt[T], error) {
		if cell == "" {
			return Opt[T]{}, nil
		}
		v, err := inner(cell)
		if err != nil {
			return Opt[T]{}, err
		}
		return Opt[T]{Value: v, Valid: true}, nil
	}
}

// Sequence splits cell on sep and parses each element with inner; any
// element's rejection rejects the whole cell.
func Sequence[T any](inner Parser[T], sep byte) Parser[[]T] {
	return func(cell string) ([]T, error) {
		if cell == "" {
			return nil, nil
		}
		parts := strings.Split(cell, string(sep))
		out := make([]T, len(parts))
		for i, p := range parts {
			v, err := inner(p)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}
