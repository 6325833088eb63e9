package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n: adapter is nil")
	ErrNoTranslations       = errors.New("i18n: no translations found")
	ErrInvalidLanguage      = errors.New("i18n: invalid language code")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadDir      = errors.New("failed to read translations directory")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
)
