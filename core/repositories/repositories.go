// Package repositories holds what every repository and store in the core shares.
package repositories

import (
	"errors"
)

// ErrNotFound is wrapped by stores when a record does not exist.
var ErrNotFound = errors.New("record not found")
