// Package validation provides a filesystem-backed [schema.Validator], which
// checks that a location exists (and optionally that it is a regular file or
// directory) before any reading is attempted.
package validation

import (
	"fmt"
	"os"
)

// Strictness is the level of checks that a [Validator] performs.
type Strictness int

const (
	// StrictnessFileOrDir requires a location to exist and to be either a
	// regular file or a directory. This is the default.
	StrictnessFileOrDir Strictness = iota

	// StrictnessExists only requires a location to exist.
	StrictnessExists
)

func (s Strictness) String() string {
	switch s {
	case StrictnessFileOrDir:
		return "strict"
	case StrictnessExists:
		return "exists"
	default:
		return fmt.Sprintf("Strictness(%d)", int(s))
	}
}

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

// Validator is the principal implementation of a filesystem-backed
// [schema.Validator]. Symbolic links are followed, so a broken link is not
// considered to exist.
type Validator struct {
	osHandler  osProvider
	strictness Strictness
}

// NewValidator returns a pointer to a new [Validator] of the given
// [Strictness].
func NewValidator(osHandler osProvider, strictness Strictness) *Validator {
	return &Validator{
		osHandler:  osHandler,
		strictness: strictness,
	}
}

// Strictness returns the [Strictness] the [Validator] was configured with.
func (v *Validator) Strictness() Strictness {
	return v.strictness
}

// Validate returns [ErrInvalidLocation] if the location does not exist or, in
// [StrictnessFileOrDir], if it is neither a regular file nor a directory.
func (v *Validator) Validate(location string) error {
	if location == "" {
		return fmt.Errorf("(validation) %w: %w", ErrInvalidLocation, ErrEmptyLocation)
	}

	info, err := v.osHandler.Stat(location)
	if err != nil {
		return fmt.Errorf("(validation) %w: %w", ErrInvalidLocation, err)
	}

	if v.strictness == StrictnessExists {
		return nil
	}

	if !info.Mode().IsRegular() && !info.IsDir() {
		return fmt.Errorf("(validation) %w: %s has unsupported type %s", ErrInvalidLocation, location, info.Mode().Type())
	}

	return nil
}
