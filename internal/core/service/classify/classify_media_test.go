package classify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"post-pilot/internal/adapters/probe"
	"post-pilot/internal/adapters/source"
	"post-pilot/internal/config"
	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/service/classify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCfg = config.UploadConfig{
	ClassifyTimeout:   200 * time.Millisecond,
	MaxVideoSize:      1 << 30,
	MaxSampleDuration: 300,
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func imageSrc(name string) domain.MediaSource {
	return source.NewBytes(name, "image/jpeg", time.Unix(1700000000, 0), []byte("jpeg-bytes"))
}

func videoSrc(name string) domain.MediaSource {
	return source.NewBytes(name, "video/mp4", time.Unix(1700000000, 0), []byte("mp4-bytes"))
}

func TestClassifierService_Classify_Thresholds(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   domain.Orientation
	}{
		{"wide", 1920, 1080, domain.OrientationLandscape},
		{"tall", 1080, 1920, domain.OrientationPortrait},
		{"square", 1000, 1000, domain.OrientationSquare},
		{"just above landscape threshold", 1101, 1000, domain.OrientationLandscape},
		{"on landscape threshold", 1100, 1000, domain.OrientationSquare},
		{"just below portrait threshold", 899, 1000, domain.OrientationPortrait},
		{"on portrait threshold", 900, 1000, domain.OrientationSquare},
		{"zero dimensions", 0, 0, domain.OrientationSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			mockImage := probe.NewMockImageProbe()
			mockVideo := probe.NewMockVideoProbe()
			service := classify.NewClassifierService(mockImage, mockVideo, testCfg, testLogger())

			src := imageSrc(tt.name + ".jpg")
			mockImage.On("Dimensions", mock.Anything, src).Return(tt.width, tt.height, nil)

			// Act
			got := service.Classify(ctx, src)

			// Assert
			assert.Equal(t, tt.want, got)
			mockImage.AssertExpectations(t)
		})
	}
}

func TestClassifierService_Classify_VideoUsesVideoProbe(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockImage := probe.NewMockImageProbe()
	mockVideo := probe.NewMockVideoProbe()
	service := classify.NewClassifierService(mockImage, mockVideo, testCfg, testLogger())

	src := videoSrc("clip.mp4")
	mockVideo.On("Metadata", mock.Anything, src).
		Return(&domain.VideoMetadata{Width: 720, Height: 1280, DurationSeconds: 42}, nil)

	// Act
	got := service.Classify(ctx, src)

	// Assert
	assert.Equal(t, domain.OrientationPortrait, got)
	mockVideo.AssertExpectations(t)
	mockImage.AssertNotCalled(t, "Dimensions", mock.Anything, mock.Anything)
}

func TestClassifierService_Classify_CachesBySignature(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockImage := probe.NewMockImageProbe()
	mockVideo := probe.NewMockVideoProbe()
	service := classify.NewClassifierService(mockImage, mockVideo, testCfg, testLogger())

	first := imageSrc("photo.jpg")
	second := imageSrc("photo.jpg") // same name, size, mtime, content type

	mockImage.On("Dimensions", mock.Anything, first).Return(1920, 1080, nil).Once()

	// Act
	got1 := service.Classify(ctx, first)
	got2 := service.Classify(ctx, second)

	// Assert
	assert.Equal(t, domain.OrientationLandscape, got1)
	assert.Equal(t, domain.OrientationLandscape, got2)
	mockImage.AssertNumberOfCalls(t, "Dimensions", 1)
}

func TestClassifierService_Classify_DeduplicatesInFlight(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockImage := probe.NewMockImageProbe()
	mockVideo := probe.NewMockVideoProbe()
	service := classify.NewClassifierService(mockImage, mockVideo, testCfg, testLogger())

	src := imageSrc("burst.jpg")
	release := make(chan struct{})
	mockImage.On("Dimensions", mock.Anything, src).
		Run(func(args mock.Arguments) { <-release }).
		Return(1920, 1080, nil)

	// Act: several callers race for the same key while the probe hangs
	const callers = 8
	results := make([]domain.Orientation, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = service.Classify(ctx, src)
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	// Assert
	for _, got := range results {
		assert.Equal(t, domain.OrientationLandscape, got)
	}
	mockImage.AssertNumberOfCalls(t, "Dimensions", 1)
}

func TestClassifierService_Classify_ProbeErrorDegradesToSquareAndCaches(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockImage := probe.NewMockImageProbe()
	mockVideo := probe.NewMockVideoProbe()
	service := classify.NewClassifierService(mockImage, mockVideo, testCfg, testLogger())

	src := videoSrc("corrupt.mp4")
	mockVideo.On("Metadata", mock.Anything, src).
		Return(nil, errors.New("moov atom not found")).Once()

	// Act
	got1 := service.Classify(ctx, src)
	got2 := service.Classify(ctx, src)

	// Assert: degraded result is cached like any other
	assert.Equal(t, domain.OrientationSquare, got1)
	assert.Equal(t, domain.OrientationSquare, got2)
	mockVideo.AssertNumberOfCalls(t, "Metadata", 1)
}

func TestClassifierService_Classify_TimeoutDegradesToSquare(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockImage := probe.NewMockImageProbe()
	mockVideo := probe.NewMockVideoProbe()
	service := classify.NewClassifierService(mockImage, mockVideo, testCfg, testLogger())

	src := videoSrc("slow.mp4")
	mockVideo.On("Metadata", mock.Anything, src).
		Run(func(args mock.Arguments) { time.Sleep(2 * testCfg.ClassifyTimeout) }).
		Return(&domain.VideoMetadata{Width: 1920, Height: 1080}, nil)

	// Act
	start := time.Now()
	got := service.Classify(ctx, src)
	elapsed := time.Since(start)

	// Assert
	assert.Equal(t, domain.OrientationSquare, got)
	require.Less(t, elapsed, 2*testCfg.ClassifyTimeout)
}

func TestClassifierService_Classify_UnknownContentTypeIsSquare(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockImage := probe.NewMockImageProbe()
	mockVideo := probe.NewMockVideoProbe()
	service := classify.NewClassifierService(mockImage, mockVideo, testCfg, testLogger())

	src := source.NewBytes("notes.txt", "text/plain", time.Unix(1700000000, 0), []byte("hello"))

	// Act
	got := service.Classify(ctx, src)

	// Assert
	assert.Equal(t, domain.OrientationSquare, got)
	mockImage.AssertNotCalled(t, "Dimensions", mock.Anything, mock.Anything)
	mockVideo.AssertNotCalled(t, "Metadata", mock.Anything, mock.Anything)
}
