package bptree

import "errors"

// Errors returned by Verify. Each is wrapped with the level and position of
// the offending node.
//
//goland:noinspection GoUnusedGlobalVariable
var (
	ErrUnsorted   = errors.New("entries out of order")
	ErrOverfull   = errors.New("node holds order or more entries")
	ErrEmptyNode  = errors.New("node has no entries")
	ErrSeparator  = errors.New("separator key does not match child")
	ErrHeight     = errors.New("leaf depth does not match tree height")
	ErrLeafChain  = errors.New("leaf sibling chain broken")
	ErrCount      = errors.New("record count mismatch")
	ErrWrongShape = errors.New("unexpected node variant")
)
