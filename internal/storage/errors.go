package storage

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidFileType
	KindEmptyFile
	KindFileTooLarge
	KindUnsupportedFileType
	KindUploadTransport
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFileType:
		return "invalid_file_type"
	case KindEmptyFile:
		return "empty_file"
	case KindFileTooLarge:
		return "file_too_large"
	case KindUnsupportedFileType:
		return "unsupported_file_type"
	case KindUploadTransport:
		return "upload_transport"
	default:
		return "unknown"
	}
}

// Error carries the failure kind so callers can branch on it instead of on message text.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns KindUnknown for errors that did not come from this package.
func KindOf(err error) Kind {
	var storageErr *Error
	if errors.As(err, &storageErr) {
		return storageErr.Kind
	}
	return KindUnknown
}

// StatusError reports a put the store answered with a non-success HTTP status.
type StatusError struct {
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upload failed with status: %d: %v", e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func transportError(err error) *Error {
	return &Error{
		Kind:    KindUploadTransport,
		Message: "Failed to upload Android package: " + err.Error(),
		Err:     err,
	}
}
