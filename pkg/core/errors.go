package core

import "errors"

// ErrNotFound is returned when no item has the requested ID.
var ErrNotFound = errors.New("item not found")
