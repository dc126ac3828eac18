// Package cellrender implements the scalar half of C6: one
// func(T) string per scalar kind, dual to internal/cellparse.
package cellrender

import (
	"net/url"
	"strconv"
	"time"

	"github.com/golang-sql/civil"
	"github.com/shopspring/decimal"

	"github.com/rchillyard/tableparser/internal/cellparse"
)

// Render converts a typed value into its cell string.
type Render[T any] func(v T) string

// Int64 renders a signed decimal integer.
func Int64() Render[int64] { return func(v int64) string { return strconv.FormatInt(v, 10) } }

// Int32 renders a signed decimal integer.
func Int32() Render[int32] { return func(v int32) string { return strconv.FormatInt(int64(v), 10) } }

// Float64 renders an IEEE-754 decimal using the shortest round-trip
// representation (strconv's 'g'/-1 precision).
func Float64() Render[float64] {
	return func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
}

// BigDecimal renders an exact decimal.
func BigDecimal() Render[decimal.Decimal] {
	return func(v decimal.Decimal) string { return v.String() }
}

// Bool renders "true"/"false".
func Bool() Render[bool] { return func(v bool) string { return strconv.FormatBool(v) } }

// String renders verbatim.
func String() Render[string] { return func(v string) string { return v } }

// URL renders the URL's string form.
func URL() Render[*url.URL] {
	return func(v *url.URL) string {
		if v == nil {
			return ""
		}
		return v.String()
	}
}

// Date renders a calendar date using layout (time.Format-compatible);
// empty layout renders RFC3339 full-date via civil.Date.String().
func Date(layout string) Render[civil.Date] {
	return func(v civil.Date) string {
		if layout == "" {
			return v.String()
		}
		t := time.Date(v.Year, v.Month, v.Day, 0, 0, 0, 0, time.UTC)
		return t.Format(layout)
	}
}

// Optional renders an cellparse.Opt[T]: empty string when absent, else
// delegates to inner.
func Optional[T any](inner Render[T]) Render[cellparse.Opt[T]] {
	return func(v cellparse.Opt[T]) string {
		if !v.Valid {
			return ""
		}
		return inner(v.Value)
	}
}

// Sequence renders a []T by joining each element's rendering with sep.
func Sequence[T any](inner Render[T], sep byte) Render[[]T] {
	return func(vs []T) string {
		if len(vs) == 0 {
			return ""
		}
		out := make([]byte, 0, len(vs)*8)
		for i, v := range vs {
			if i > 0 {
				out = append(out, sep)
			}
			out = append(out, []byte(inner(v))...)
		}
		return string(out)
	}
}
