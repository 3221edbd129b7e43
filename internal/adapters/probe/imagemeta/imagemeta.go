package imagemeta

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"io"

	"post-pilot/internal/core/domain"

	// header decoders for the platform's accepted image MIME list
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// headerLimit bounds how much of a file a dimension probe may read.
// DecodeConfig only parses headers; anything needing more than this is
// treated as undecodable.
const headerLimit = 1 << 20

// Probe reads image dimensions from file headers without decoding pixels.
type Probe struct{}

// NewProbe returns Probe
func NewProbe() *Probe {
	return &Probe{}
}

// Dimensions returns the pixel width and height of an image. The source
// handle is closed before returning, on every path.
func (p *Probe) Dimensions(ctx context.Context, src domain.MediaSource) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	reader, err := src.Open()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer reader.Close()

	cfg, _, err := image.DecodeConfig(bufio.NewReader(io.LimitReader(reader, headerLimit)))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image header: %w", err)
	}

	return cfg.Width, cfg.Height, nil
}
