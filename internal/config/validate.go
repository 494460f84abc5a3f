package config

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/termlog/pkg/logging"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidConfig is matched by every validation error.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrUnknownKey indicates a key termlog does not recognize.
	ErrUnknownKey = errors.New("unknown configuration key")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.Mark(errors.New("config is nil"), ErrInvalidConfig)}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, &FieldError{Field: KeyVersion, Value: strconv.Itoa(cfg.Version), Err: ErrVersionTooLow})
	}
	if err := ValidateValue(KeyVerbosity, cfg.Verbosity); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateValue(KeyColor, cfg.Color); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// ValidateValue checks a single raw value as it would be written by
// `termlog config set`.
func ValidateValue(key, value string) error {
	var err error
	switch key {
	case KeyVersion:
		var v int
		v, err = strconv.Atoi(value)
		if err == nil && v < 1 {
			err = ErrVersionTooLow
		}
	case KeyVerbosity:
		_, err = logging.Resolve(value)
	case KeyColor:
		_, err = logging.ParseColorMode(value)
	default:
		err = ErrUnknownKey
	}

	if err != nil {
		return &FieldError{Field: key, Value: value, Err: err}
	}
	return nil
}

// FieldError represents an error for a specific configuration key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is makes every FieldError match ErrInvalidConfig.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidConfig
}
