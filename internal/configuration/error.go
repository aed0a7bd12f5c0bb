package configuration

import "errors"

// ErrInvalidValue occurs when a configuration key holds a value that is not
// supported. The respective default is used in its place.
var ErrInvalidValue = errors.New("invalid configuration value")
