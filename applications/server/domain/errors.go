package domain

import (
	"fmt"
	"strings"
)

// Kind classifies a failure so the HTTP layer can pick a status code.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnsupportedMediaType
	KindPayloadTooLarge
	KindUpstream
	KindNotFound
	KindInternal
)

// Error is a tagged failure returned by value through the service layer.
// Message is safe to show to the client; Err keeps the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func ErrNoFile() *Error {
	return E(KindBadRequest, "No file uploaded")
}

func ErrUnsupportedType(mimeType string, allowed []string) *Error {
	return E(KindUnsupportedMediaType,
		fmt.Sprintf("Unsupported file type: %s. Allowed types: %s", mimeType, strings.Join(allowed, ", ")))
}

func ErrTooLarge(size, limit int64) *Error {
	return E(KindPayloadTooLarge,
		fmt.Sprintf("File too large: %.2f MB. Maximum file size is %d MB", float64(size)/(1<<20), limit/(1<<20)))
}

func ErrInvalidUpstreamResponse() *Error {
	return E(KindUpstream, "Upload failed or invalid response")
}
