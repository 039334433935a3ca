package mocks

import (
	"mime/multipart"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
)

// MockFileStore implements domain.FileStore interface for testing
type MockFileStore struct {
	SaveFunc   func(file *multipart.FileHeader) (string, error)
	RemoveFunc func(ref string) error

	// Removed records every reference passed to Remove
	Removed []string
}

// NewMockFileStore creates a new MockFileStore with default behaviors
func NewMockFileStore() *MockFileStore {
	return &MockFileStore{}
}

// Save persists an upload
func (m *MockFileStore) Save(file *multipart.FileHeader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(file)
	}
	// Default behavior: fixed servable reference
	return "/uploads/mock.png", nil
}

// Remove discards a stored upload
func (m *MockFileStore) Remove(ref string) error {
	m.Removed = append(m.Removed, ref)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ref)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.FileStore = (*MockFileStore)(nil)
