package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig matches every validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrSettingNotFound is returned by Set and Get for unknown paths.
	ErrSettingNotFound = errors.New("setting not found")
)

// ValidationError is one rejected setting. It matches ErrInvalidConfig.
type ValidationError struct {
	Path    string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Path, e.Value, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}
