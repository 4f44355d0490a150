package infra

import (
	"errors"
	"log/slog"

	"beautyverse-storefront/internal/pkg/errs"
)

type StorageErrorKind string

type StorageError struct {
	Kind StorageErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StorageError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StorageError) Unwrap() error {
	return e.err
}

func WrapStorageErr(slogger *slog.Logger, kind StorageErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Storage error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return errs.Mark(StorageError{Kind: kind, msg: msg, err: err}, errs.ErrStorageFailed)
}

func IsKind(err error, kind StorageErrorKind) bool {
	var e StorageError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindUnavailable StorageErrorKind = "UNAVAILABLE"
	KindRead        StorageErrorKind = "READ_FAILURE"
	KindWrite       StorageErrorKind = "WRITE_FAILURE"
	KindSchema      StorageErrorKind = "SCHEMA_FAILURE"
)
