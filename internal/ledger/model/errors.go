package model

import "errors"

var (
	// ErrAppendConflict signals a concurrent-append race detected at the
	// store. The caller must retry the whole append.
	ErrAppendConflict = errors.New("append conflict: concurrent write detected")

	// ErrInvalidContractState signals a contract transition attempted from a
	// state that does not permit it.
	ErrInvalidContractState = errors.New("invalid contract state")

	// ErrContractNotFound signals an unknown contract id.
	ErrContractNotFound = errors.New("contract not found")

	// ErrDocumentUnavailable signals that a supporting document could not be
	// read. It is non-fatal: backfill records it as a missing document hash.
	ErrDocumentUnavailable = errors.New("document unavailable")
)
