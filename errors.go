package ecsbench

import "errors"

// Both of these indicate a broken fixture, not a transient condition.
// Scenarios panic with them wrapped rather than trying to recover.
var ErrNotFound = errors.New("target point not found")
var ErrInvariant = errors.New("single writer invariant violated")
