package roster

import "context"

// Source provides the raw roster entries in their defined order.
type Source interface {
	Load(ctx context.Context) ([]EmployeeID, error)
}
