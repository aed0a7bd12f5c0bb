package processors

import "errors"

var (
	// ErrEmptyLocation occurs when a [Pipeline] is given an empty location.
	ErrEmptyLocation = errors.New("location is empty")

	// ErrNilStage occurs when a [Pipeline] is given a nil stage.
	ErrNilStage = errors.New("stage is nil")
)
