package formatters

import "errors"

// ErrFormat occurs when an element of the buffer cannot be rendered.
var ErrFormat = errors.New("failed to format entry")
