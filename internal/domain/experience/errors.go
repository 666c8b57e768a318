package experience

import "errors"

var (
	// ErrInvalidExperience is returned when an experience is missing a required field
	// or ends before it starts
	ErrInvalidExperience = errors.New("invalid experience")
)
