package adcopy

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the base class for rejected requests. Match with
	// errors.Is to map onto a 400 at the HTTP boundary.
	ErrValidation = errors.New("validation failed")

	ErrMissingDescription = fmt.Errorf("%w: newsletter description and platform are required", ErrValidation)
	ErrUnknownPlatform    = fmt.Errorf("%w: invalid platform, must be twitter, linkedin, or seo", ErrValidation)

	// ErrGeneration covers failures of the live generation path.
	ErrGeneration = errors.New("failed to generate ad copy")
)
