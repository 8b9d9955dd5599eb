package array

import "errors"

var (
	ErrAllocationFailure = errors.New("dynamic array allocation failed")
)
