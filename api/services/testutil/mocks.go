package testutil

import (
	"context"
	"fitconsole/pkg/kv"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock Implementations used on the service tests.
// ============================================================================

// MockStore mocks the key-value store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) GetByPrefix(ctx context.Context, prefix string) ([]kv.Entry, error) {
	args := m.Called(ctx, prefix)
	entries, _ := args.Get(0).([]kv.Entry)
	return entries, args.Error(1)
}
