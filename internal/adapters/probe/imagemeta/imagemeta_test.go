package imagemeta_test

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
	"time"

	"post-pilot/internal/adapters/probe/imagemeta"
	"post-pilot/internal/adapters/source"
	"post-pilot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodedImage(t *testing.T, contentType string, width, height int) domain.MediaSource {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	switch contentType {
	case "image/png":
		require.NoError(t, png.Encode(&buf, img))
	case "image/jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	default:
		t.Fatalf("unsupported test content type %s", contentType)
	}
	return source.NewBytes("probe-input", contentType, time.Unix(1700000000, 0), buf.Bytes())
}

func TestProbe_Dimensions(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		width       int
		height      int
	}{
		{"landscape png", "image/png", 1920, 1080},
		{"portrait jpeg", "image/jpeg", 1080, 1920},
		{"square png", "image/png", 512, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			probe := imagemeta.NewProbe()
			src := encodedImage(t, tt.contentType, tt.width, tt.height)

			// Act
			width, height, err := probe.Dimensions(context.Background(), src)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.width, width)
			assert.Equal(t, tt.height, height)
		})
	}
}

func TestProbe_Dimensions_UndecodableInput(t *testing.T) {
	// Arrange
	probe := imagemeta.NewProbe()
	src := source.NewBytes("garbage.jpg", "image/jpeg", time.Unix(1700000000, 0), []byte("not an image at all"))

	// Act
	_, _, err := probe.Dimensions(context.Background(), src)

	// Assert
	assert.Error(t, err)
}

func TestProbe_Dimensions_CancelledContext(t *testing.T) {
	// Arrange
	probe := imagemeta.NewProbe()
	src := encodedImage(t, "image/png", 100, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, _, err := probe.Dimensions(ctx, src)

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
}
