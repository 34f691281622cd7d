package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockSourceRootResolver mocks the SourceRootResolver interface
type MockSourceRootResolver struct {
	mock.Mock
}

// Resolve mocks source-set resolution
func (m *MockSourceRootResolver) Resolve(sourceSet string) (string, error) {
	args := m.Called(sourceSet)
	return args.String(0), args.Error(1)
}
