package contentapi

import (
	"context"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type MockContentAPI struct {
	mock.Mock
}

func NewMockContentAPI() *MockContentAPI {
	return &MockContentAPI{}
}

func (m *MockContentAPI) CreatePost(ctx context.Context, meta domain.PostMetadata) (string, error) {
	args := m.Called(ctx, meta)
	return args.String(0), args.Error(1)
}

func (m *MockContentAPI) UpdatePost(ctx context.Context, postID string, meta domain.PostMetadata) error {
	args := m.Called(ctx, postID, meta)
	return args.Error(0)
}

func (m *MockContentAPI) DeletePost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockContentAPI) RequestTempVideoUpload(ctx context.Context, filename string, contentType string, sizeBytes int64) (*domain.TempUploadTarget, error) {
	args := m.Called(ctx, filename, contentType, sizeBytes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TempUploadTarget), args.Error(1)
}

func (m *MockContentAPI) GetTempVideoPlaybackURL(ctx context.Context, tempStorageKey string) (string, error) {
	args := m.Called(ctx, tempStorageKey)
	return args.String(0), args.Error(1)
}

func (m *MockContentAPI) PlanImageUploads(ctx context.Context, postID string, requests []port.UploadPlanRequest) ([]domain.UploadGrant, error) {
	args := m.Called(ctx, postID, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UploadGrant), args.Error(1)
}

func (m *MockContentAPI) PlanVideoUploads(ctx context.Context, postID string, requests []port.UploadPlanRequest) ([]domain.UploadGrant, error) {
	args := m.Called(ctx, postID, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UploadGrant), args.Error(1)
}

func (m *MockContentAPI) GenerateOgpImage(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockContentAPI) TriggerBatchProcess(ctx context.Context, req domain.BatchProcessRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
