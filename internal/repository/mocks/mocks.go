package mocks

import (
	"context"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
	"github.com/stretchr/testify/mock"
)

// LedgerRepository is a mock for repository.LedgerRepository.
type LedgerRepository struct {
	mock.Mock
}

func (m *LedgerRepository) ReplaceDay(ctx context.Context, d day.Day, marks []ledger.Mark) error {
	args := m.Called(ctx, d, marks)
	return args.Error(0)
}

func (m *LedgerRepository) GetDay(ctx context.Context, d day.Day) ([]ledger.Mark, error) {
	args := m.Called(ctx, d)
	if marks, ok := args.Get(0).([]ledger.Mark); ok {
		return marks, args.Error(1)
	}
	return nil, args.Error(1)
}

// ArchiveRepository is a mock for repository.ArchiveRepository.
type ArchiveRepository struct {
	mock.Mock
}

func (m *ArchiveRepository) Exists(ctx context.Context, d day.Day) (bool, error) {
	args := m.Called(ctx, d)
	return args.Bool(0), args.Error(1)
}

func (m *ArchiveRepository) GetDay(ctx context.Context, d day.Day) ([]ledger.Mark, error) {
	args := m.Called(ctx, d)
	if marks, ok := args.Get(0).([]ledger.Mark); ok {
		return marks, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ArchiveRepository) Rotate(ctx context.Context, d day.Day, rotationID string) (bool, error) {
	args := m.Called(ctx, d, rotationID)
	return args.Bool(0), args.Error(1)
}

// RosterSource is a mock for roster.Source.
type RosterSource struct {
	mock.Mock
}

func (m *RosterSource) Load(ctx context.Context) ([]roster.EmployeeID, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]roster.EmployeeID); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}
