package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidSettings  = errors.New("invalid settings document")
	ErrUnknownHookType  = errors.New("unknown hook type")
	ErrLauncherNotOwned = errors.New("launcher does not contain the claude-notify name")
	ErrNoInput          = errors.New("no input available")
	ErrInvalidConfig    = errors.New("invalid claude-notify configuration")
)

// PathError wraps errors with path context
type PathError struct {
	Path string
	Op   string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError creates a new path error
func NewPathError(path, op string, err error) *PathError {
	return &PathError{Path: path, Op: op, Err: err}
}

// HookTypeError reports a hook type name that is not in the catalog
type HookTypeError struct {
	Name string
}

func (e *HookTypeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownHookType, e.Name)
}

func (e *HookTypeError) Unwrap() error {
	return ErrUnknownHookType
}

// NewHookTypeError creates a new hook type error
func NewHookTypeError(name string) *HookTypeError {
	return &HookTypeError{Name: name}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
