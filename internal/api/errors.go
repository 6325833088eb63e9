package api

import "errors"

var (
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrNotFound             = errors.New("no such route")
)
