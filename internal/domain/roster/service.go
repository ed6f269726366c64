package roster

import (
	"context"
	"fmt"
	"log/slog"
)

// Service loads and validates the roster.
type Service struct {
	source Source
	logger *slog.Logger
}

// NewService creates a new roster service.
func NewService(source Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, logger: logger}
}

// Load reads the roster from its source, preserving source order.
// Duplicate entries are rejected; an empty roster is valid.
func (s *Service) Load(ctx context.Context) (Roster, error) {
	ids, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[EmployeeID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmployee, id)
		}
		seen[id] = struct{}{}
	}

	return Roster(ids), nil
}
