package config

import "errors"

var (
	// ErrReadFile is returned when the settings file cannot be read.
	ErrReadFile = errors.New("config: read settings file")
	// ErrDecodeFile is returned for malformed YAML.
	ErrDecodeFile = errors.New("config: decode settings file")
	// ErrParseEnv is returned when environment variables cannot be parsed.
	ErrParseEnv = errors.New("config: parse environment")
	// ErrInvalidSettings is returned when settings fail validation.
	ErrInvalidSettings = errors.New("config: invalid settings")
	// ErrInvalidRule is returned for a validator rule that is not exactly one
	// of tag, pattern or one_of.
	ErrInvalidRule = errors.New("config: invalid validator rule")
	// ErrInvalidTimeout is returned for a timeout that is neither a duration,
	// a millisecond count nor false.
	ErrInvalidTimeout = errors.New("config: invalid timeout")
)
