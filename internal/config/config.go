package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env        Env
	ContentAPI ContentAPIConfig
	Upload     UploadConfig
	NATS       NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ContentAPIConfig struct {
	BaseURL        string        `envconfig:"CONTENT_API_BASE_URL" required:"true"`
	Token          string        `envconfig:"CONTENT_API_TOKEN" required:"true"`
	RequestTimeout time.Duration `envconfig:"CONTENT_API_REQUEST_TIMEOUT" default:"30s"`
}

type UploadConfig struct {
	MaxVideoSize      int64         `envconfig:"UPLOAD_MAX_VIDEO_SIZE" default:"5368709120"` // 5GB
	ClassifyTimeout   time.Duration `envconfig:"UPLOAD_CLASSIFY_TIMEOUT" default:"4s"`
	MaxSampleDuration float64       `envconfig:"UPLOAD_MAX_SAMPLE_DURATION" default:"300"` // seconds
	FFprobeBin        string        `envconfig:"UPLOAD_FFPROBE_BIN" default:"ffprobe"`
}

// NATSConfig is optional: with an empty URL no progress events are
// published outside the process.
type NATSConfig struct {
	URL        string `envconfig:"NATS_URL" default:""`
	Subject    string `envconfig:"NATS_PROGRESS_SUBJECT" default:"postpilot.progress"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"post-pilot"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
