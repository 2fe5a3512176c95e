package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrSourceMissing  = errors.New("word-list source missing")
	ErrDocumentUnread = errors.New("document unreadable")
)
