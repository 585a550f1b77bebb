package pebble

import "errors"

var (
	ErrClosed   = errors.New("listing-cache: database is closed")
	ErrNotFound = errors.New("listing-cache: key not found")
)
