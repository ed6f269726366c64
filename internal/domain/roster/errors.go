package roster

import "errors"

var (
	// ErrUnavailable indicates the roster's backing source is missing.
	// An existing but empty source is a valid, empty roster instead.
	ErrUnavailable = errors.New("roster unavailable")
	// ErrDuplicateEmployee indicates two byte-equal roster entries.
	ErrDuplicateEmployee = errors.New("duplicate roster entry")
)
