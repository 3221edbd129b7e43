package transport

import (
	"context"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type MockTransport struct {
	mock.Mock
}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (m *MockTransport) Upload(ctx context.Context, grant domain.UploadGrant, src domain.MediaSource, onProgress port.ProgressFunc) error {
	args := m.Called(ctx, grant, src, onProgress)
	return args.Error(0)
}
