package nats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"post-pilot/internal/config"
	"post-pilot/internal/core/domain"

	"github.com/nats-io/nats.go"
)

// Publisher mirrors submission progress onto a NATS subject so a separate
// UI process can subscribe without holding the pipeline open.
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	config config.NATSConfig
}

// NewPublisher creates a new progress publisher
func NewPublisher(cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		conn:   conn,
		config: cfg,
		logger: logger,
	}, nil
}

type progressEvent struct {
	Phase          string  `json:"phase"`
	OverallPercent float64 `json:"overall_percent"`
	Message        string  `json:"message"`
	PublishedAt    string  `json:"published_at"`
}

// Publish sends one progress snapshot. Publish failures are logged, never
// surfaced: progress mirroring must not be able to fail a submission.
func (p *Publisher) Publish(update domain.ProgressUpdate) {
	event := progressEvent{
		Phase:          string(update.Phase),
		OverallPercent: update.OverallPercent,
		Message:        update.Message,
		PublishedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode progress event", "error", err)
		return
	}

	if err := p.conn.Publish(p.config.Subject, data); err != nil {
		p.logger.Warn("failed to publish progress event", "subject", p.config.Subject, "error", err)
	}
}

// Close graceful shutdown
func (p *Publisher) Close() error {
	if p.conn != nil {
		if err := p.conn.Flush(); err != nil {
			p.logger.Warn("failed to flush NATS connection", "error", err)
		}
		p.conn.Close()
	}
	return nil
}
