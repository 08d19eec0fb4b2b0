package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// NotFound 例：NotFound("user", 7) => "user 7 not found"
func NotFound(resource string, id int) error {
	return fmt.Errorf("%s %d %w", resource, id, ErrNotFound)
}

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
