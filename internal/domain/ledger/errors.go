package ledger

import "errors"

var (
	// ErrUnknownEmployee indicates a submission for an ID not on the roster.
	ErrUnknownEmployee = errors.New("unknown employee")
	// ErrInvalidStatus indicates a submission with a status outside Present/Absent.
	ErrInvalidStatus = errors.New("invalid status")
)
