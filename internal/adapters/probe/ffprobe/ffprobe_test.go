package ffprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbeOutput(t *testing.T) {
	// Arrange
	raw := []byte(`{
		"streams": [{"width": 1920, "height": 1080}],
		"format": {"duration": "123.456000"}
	}`)

	// Act
	meta, err := parseProbeOutput(raw)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1920, meta.Width)
	assert.Equal(t, 1080, meta.Height)
	assert.InDelta(t, 123.456, meta.DurationSeconds, 0.0001)
}

func TestParseProbeOutput_MissingDurationIsTolerated(t *testing.T) {
	// Arrange: piped input often has no container-level duration
	raw := []byte(`{"streams": [{"width": 720, "height": 1280}], "format": {}}`)

	// Act
	meta, err := parseProbeOutput(raw)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 720, meta.Width)
	assert.Equal(t, 1280, meta.Height)
	assert.Zero(t, meta.DurationSeconds)
}

func TestParseProbeOutput_NoVideoStream(t *testing.T) {
	// Arrange: e.g. an audio-only container
	raw := []byte(`{"streams": [], "format": {"duration": "30.0"}}`)

	// Act
	meta, err := parseProbeOutput(raw)

	// Assert
	assert.Nil(t, meta)
	assert.Error(t, err)
}

func TestParseProbeOutput_InvalidJSON(t *testing.T) {
	// Act
	meta, err := parseProbeOutput([]byte("ffprobe: command not found"))

	// Assert
	assert.Nil(t, meta)
	assert.Error(t, err)
}

func TestParseProbeOutput_UnparsableDuration(t *testing.T) {
	// Arrange
	raw := []byte(`{"streams": [{"width": 640, "height": 480}], "format": {"duration": "N/A"}}`)

	// Act
	meta, err := parseProbeOutput(raw)

	// Assert: garbage duration degrades to unknown, dimensions survive
	require.NoError(t, err)
	assert.Equal(t, 640, meta.Width)
	assert.Zero(t, meta.DurationSeconds)
}
