package repository

import "errors"

// ErrNotFound is returned when a requested dataset file or table is not
// present in the source. It abstracts the storage implementation away from
// the service layer.
var ErrNotFound = errors.New("dataset not found")
