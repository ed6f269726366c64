package rotation

import "errors"

// ErrRotationFailed indicates a storage failure while closing a day.
// The live record and the archive are left unchanged; the same trigger
// is safe to retry.
var ErrRotationFailed = errors.New("rotation failed")
