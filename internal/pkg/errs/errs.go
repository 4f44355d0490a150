package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err is target or carries it as a mark. Use it for every
// sentinel check: marks added by Mark are invisible to the standard errors.Is.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Validation builds a validation error whose message is shown to the user as is
func Validation(msg string) error {
	return cr.Mark(cr.New(msg), ErrValidation)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// UserMessage is the text of the innermost cause, without wrap prefixes.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return cr.UnwrapAll(err).Error()
}
