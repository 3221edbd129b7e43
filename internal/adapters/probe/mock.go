package probe

import (
	"context"

	"post-pilot/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockImageProbe struct {
	mock.Mock
}

func NewMockImageProbe() *MockImageProbe {
	return &MockImageProbe{}
}

func (m *MockImageProbe) Dimensions(ctx context.Context, src domain.MediaSource) (int, int, error) {
	args := m.Called(ctx, src)
	return args.Int(0), args.Int(1), args.Error(2)
}

type MockVideoProbe struct {
	mock.Mock
}

func NewMockVideoProbe() *MockVideoProbe {
	return &MockVideoProbe{}
}

func (m *MockVideoProbe) Metadata(ctx context.Context, src domain.MediaSource) (*domain.VideoMetadata, error) {
	args := m.Called(ctx, src)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoMetadata), args.Error(1)
}
