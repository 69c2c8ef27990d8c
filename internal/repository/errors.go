package repository

import "errors"

// ErrNotFound is returned when a key or record does not exist.
var ErrNotFound = errors.New("not found")
