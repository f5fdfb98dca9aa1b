package donation

import "errors"

var (
	// ErrInvalidInput flags missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden means the principal is authenticated but its role does
	// not permit the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers both a genuinely missing record and a record owned
	// by someone else, so cancellation cannot probe for other donors' data.
	ErrNotFound = errors.New("donation not found")

	// ErrConflict means the request already left the pending status.
	ErrConflict = errors.New("donation already finalized")
)
