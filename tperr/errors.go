// Package tperr defines the structured error taxonomy used across the
// parsing, rendering, and encryption transport packages.
package tperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure without pinning it to a specific Go type,
// matching the taxonomy in the design (a closed set of reasons, not an
// open type hierarchy).
type Kind int

const (
	// MalformedRecord means the lexer reached an illegal state while
	// splitting a physical line into cells.
	MalformedRecord Kind = iota
	// UnterminatedRecord means a quoted field was still open when its
	// input ended: at end-of-stream with multiline continuation enabled,
	// or at the end of the physical line without it.
	UnterminatedRecord
	// CellConversion means a scalar parser rejected a cell's text.
	CellConversion
	// HeaderColumnMissing means a required field had no matching header
	// column.
	HeaderColumnMissing
	// HeaderShapeMismatch means header rows had unequal lengths or
	// produced duplicate joined names.
	HeaderShapeMismatch
	// EncodingError means a payload was not valid hex or base64.
	EncodingError
	// KeyNotFound means a row selected for decryption had no key in the
	// supplied key map.
	KeyNotFound
	// TruncatedCiphertext means a payload was shorter than the minimum IV
	// length for the configured cipher.
	TruncatedCiphertext
	// AuthenticationFailed is reserved for authenticated cipher modes;
	// unused by the AES-CTR reference instantiation, kept so callers can
	// switch ciphers without widening the taxonomy.
	AuthenticationFailed
	// IO means the underlying stream failed.
	IO
)

func (k Kind) String() string {
	switch k {
	case MalformedRecord:
		return "MalformedRecord"
	case UnterminatedRecord:
		return "UnterminatedRecord"
	case CellConversion:
		return "CellConversion"
	case HeaderColumnMissing:
		return "HeaderColumnMissing"
	case HeaderShapeMismatch:
		return "HeaderShapeMismatch"
	case EncodingError:
		return "EncodingError"
	case KeyNotFound:
		return "KeyNotFound"
	case TruncatedCiphertext:
		return "TruncatedCiphertext"
	case AuthenticationFailed:
		return "AuthenticationFailed"
	case IO:
		return "IO"
	default:
		return "Unknown"
	}
}

// maxFragment bounds how much of an offending fragment is echoed back to
// the caller.
const maxFragment = 120

func truncate(s string) string {
	if len(s) <= maxFragment {
		return s
	}
	return s[:maxFragment] + "…"
}

// Error is the structured failure type returned across package
// boundaries. Seq is -1 when the failure is not associated with a row.
type Error struct {
	Kind     Kind
	Seq      int
	Fragment string
	cause    error
}

func (e *Error) Error() string {
	if e.Seq >= 0 {
		return fmt.Sprintf("%s (row %d): %s", e.Kind, e.Seq, truncate(e.Fragment))
	}
	return fmt.Sprintf("%s: %s", e.Kind, truncate(e.Fragment))
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a row-less structured error.
func New(kind Kind, fragment string, cause error) *Error {
	return &Error{Kind: kind, Seq: -1, Fragment: fragment, cause: cause}
}

// WithSeq attaches the sequence number of the row that produced the
// error.
func (e *Error) WithSeq(seq int) *Error {
	cp := *e
	cp.Seq = seq
	return &cp
}

// Wrap annotates an arbitrary error with a stack trace and a short
// location note via github.com/pkg/errors.Wrapf.
func Wrap(err error, where string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, where)
}

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error, and reports whether one was found.
func KindOf(err error) (Kind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// Report collects per-row errors encountered while a table parser runs
// in forgiving mode.
type Report struct {
	Rows []*Error
}

// Add appends a row error to the report.
func (r *Report) Add(err *Error) {
	r.Rows = append(r.Rows, err)
}

// Len reports how many rows were dropped.
func (r *Report) Len() int { return len(r.Rows) }
