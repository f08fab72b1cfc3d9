package graph

import "errors"

// Connection requests are rejected synchronously with one of these sentinels;
// a rejected request leaves the graph unchanged.
var (
	ErrNodeNotFound       = errors.New("node not found")
	ErrPortNotFound       = errors.New("port not found")
	ErrPortBound          = errors.New("port already connected")
	ErrWrongDirection     = errors.New("port has wrong direction")
	ErrTypeMismatch       = errors.New("port data types do not match")
	ErrConnectionNotFound = errors.New("connection not found")
)
