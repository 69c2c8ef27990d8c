package domain

import "errors"

// ErrInvalidArgument is returned when a value falls outside one of the
// closed enumerations (level, role, language).
var ErrInvalidArgument = errors.New("invalid argument")
