package mocks

import "github.com/stretchr/testify/mock"

// MockClipboard is a testify mock of noteeditor.Clipboard.
type MockClipboard struct {
	mock.Mock
}

// NewMockClipboard creates a mock that asserts its expectations when the
// test ends.
func NewMockClipboard(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClipboard {
	m := &MockClipboard{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockClipboard) WriteAll(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
