package entity

import "errors"

// ErrNotFound is returned by repositories when an id does not resolve to a row.
var ErrNotFound = errors.New("not found")
