package repository

import "errors"

// ErrNotFound is returned when no event exists with the requested ID.
var ErrNotFound = errors.New("event not found in store")
