// Package logging provides the structured logger passed through a
// parsing/rendering pipeline (sirupsen/logrus, used as an interface
// parameter rather than a global).
package logging

import "github.com/sirupsen/logrus"

// Logger is the structured logging surface used across the codec
// packages; logrus.FieldLogger is satisfied by both *logrus.Logger and
// *logrus.Entry so callers can pass in a pre-scoped logger.
type Logger = logrus.FieldLogger

// Standard returns the package-level logrus logger, for callers that
// don't need a scoped one.
func Standard() Logger {
	return logrus.StandardLogger()
}

// RowDropped logs a forgiving-mode row rejection at Warn level with
// structured fields, rather than formatting the row error into the
// message body.
func RowDropped(log Logger, seq int, kind string, err error) {
	log.WithFields(logrus.Fields{
		"seq":  seq,
		"kind": kind,
	}).WithError(err).Warn("row dropped")
}

// EncryptedCellSkipped logs a row whose encrypted cell had no
// resolvable key, mirroring RowDropped's field shape.
func EncryptedCellSkipped(log Logger, seq int, column string) {
	log.WithFields(logrus.Fields{
		"seq":    seq,
		"column": column,
	}).Warn("encrypted cell skipped: no key")
}
