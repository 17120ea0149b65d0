package cstr

import "errors"

// Errors returned by string operations.
var (
	// ErrBadArgumentType indicates an argument that cannot supply bytes
	// (not a *Value, string, []byte, or Byteser).
	ErrBadArgumentType = errors.New("bad argument type")

	// ErrIndexOutOfRange indicates an index outside the value after
	// negative-index normalization.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotFound indicates Index or RIndex did not locate the substring.
	// Find and RFind return -1 instead.
	ErrNotFound = errors.New("substring not found")

	// ErrEmptySeparator indicates an explicit empty separator passed to
	// Split, Partition or RPartition.
	ErrEmptySeparator = errors.New("empty separator")

	// ErrZeroStep indicates a slice step of zero.
	ErrZeroStep = errors.New("slice step cannot be zero")
)
