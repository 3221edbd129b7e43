package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"

	"post-pilot/internal/core/domain"
)

// Probe shells out to ffprobe to read container metadata. Only metadata is
// parsed; no frame is ever decoded. The caller's context bounds the run.
type Probe struct {
	bin    string
	logger *slog.Logger
}

// NewProbe returns Probe. bin is the ffprobe executable, usually just
// "ffprobe" on PATH.
func NewProbe(bin string, logger *slog.Logger) *Probe {
	return &Probe{bin: bin, logger: logger}
}

// Metadata reads width, height and duration of the first video stream. The
// source is streamed over stdin so in-memory sources work too.
func (p *Probe) Metadata(ctx context.Context, src domain.MediaSource) (*domain.VideoMetadata, error) {
	reader, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open video: %w", err)
	}
	defer reader.Close()

	cmd := exec.CommandContext(ctx, p.bin,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height:format=duration",
		"-of", "json",
		"-i", "pipe:0",
	)
	cmd.Stdin = reader

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	meta, err := parseProbeOutput(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	p.logger.Debug("probed video metadata", "file", src.Name(), "width", meta.Width, "height", meta.Height, "duration", meta.DurationSeconds)
	return meta, nil
}

type probeOutput struct {
	Streams []struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func parseProbeOutput(raw []byte) (*domain.VideoMetadata, error) {
	var out probeOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	if len(out.Streams) == 0 {
		return nil, fmt.Errorf("no video stream found")
	}

	meta := &domain.VideoMetadata{
		Width:  out.Streams[0].Width,
		Height: out.Streams[0].Height,
	}
	// Streamed input does not always carry a duration; leave it unknown
	// rather than failing the whole probe.
	if out.Format.Duration != "" {
		if seconds, err := strconv.ParseFloat(out.Format.Duration, 64); err == nil {
			meta.DurationSeconds = seconds
		}
	}
	return meta, nil
}
