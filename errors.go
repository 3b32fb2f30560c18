package sheetcache

import "errors"

var (
	// ErrInvalidRange is returned by ParseRange when the descriptor has no
	// sheet name or an unterminated quoted sheet name.
	ErrInvalidRange = errors.New("sheetcache: invalid range descriptor")
	// ErrInvalidType is returned when a DistributedStorage record can not be
	// decoded into rows.
	ErrInvalidType = errors.New("sheetcache: invalid record type")
)
