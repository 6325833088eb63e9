package share

import "errors"

var (
	ErrEmptyContent     = errors.New("share: content cannot be empty")
	ErrQRCodeFailed     = errors.New("share: failed to generate QR code")
	ErrUnknownPlatform  = errors.New("share: unknown platform")
	ErrInvalidBaseURL   = errors.New("share: invalid base URL")
	ErrInvalidProjectID = errors.New("share: project id cannot be empty")
)
