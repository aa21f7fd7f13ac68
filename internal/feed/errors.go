package feed

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrFeedFormat marks a malformed feed line.
	ErrFeedFormat = crerr.New("feed format")
	// ErrSource marks a failure to open or read a feed source.
	ErrSource = crerr.New("feed source")
)

// FormatError reports the offending 1-based line and its text. Err holds the
// underlying parse failure when there is one.
type FormatError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("feed line %d: %s", e.Line, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s (%q)", msg, e.Text)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFeedFormat
}

type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("feed source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) Is(target error) bool {
	return target == ErrSource
}
