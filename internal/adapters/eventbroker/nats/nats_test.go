package nats_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	natspub "post-pilot/internal/adapters/eventbroker/nats"
	"post-pilot/internal/config"
	"post-pilot/internal/core/domain"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupNATSContainer(t *testing.T) (string, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "nats:2.10-alpine",
		ExposedPorts: []string{"4222/tcp"},
		WaitingFor:   wait.ForLog("Server is ready"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}

	return "nats://" + host + ":" + port.Port(), cleanup
}

func TestPublisher_Publish(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	subject := "postpilot.progress.test"

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	received := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(subject, received)
	require.NoError(t, err)
	defer sub.Unsubscribe()
	require.NoError(t, nc.Flush())

	cfg := config.NATSConfig{
		URL:        natsURL,
		Subject:    subject,
		ClientName: "post-pilot-test",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher, err := natspub.NewPublisher(cfg, logger)
	require.NoError(t, err)
	defer publisher.Close()

	// Act
	publisher.Publish(domain.ProgressUpdate{
		Phase:          domain.PhaseUploading,
		OverallPercent: 42.5,
		Message:        "uploading media",
	})

	// Assert
	var msg *nats.Msg
	select {
	case msg = <-received:
	case <-time.After(3 * time.Second):
		t.Fatal("progress event not received")
	}

	var event struct {
		Phase          string  `json:"phase"`
		OverallPercent float64 `json:"overall_percent"`
		Message        string  `json:"message"`
		PublishedAt    string  `json:"published_at"`
	}
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	assert.Equal(t, "uploading", event.Phase)
	assert.Equal(t, 42.5, event.OverallPercent)
	assert.Equal(t, "uploading media", event.Message)
	assert.NotEmpty(t, event.PublishedAt)
}

func TestPublisher_CloseFlushesPendingEvents(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	subject := "postpilot.progress.flush"

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	received := make(chan *nats.Msg, 4)
	_, err = nc.ChanSubscribe(subject, received)
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	cfg := config.NATSConfig{URL: natsURL, Subject: subject, ClientName: "post-pilot-test"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher, err := natspub.NewPublisher(cfg, logger)
	require.NoError(t, err)

	// Act
	publisher.Publish(domain.ProgressUpdate{Phase: domain.PhaseDone, OverallPercent: 100})
	require.NoError(t, publisher.Close())

	// Assert
	select {
	case <-received:
	case <-time.After(3 * time.Second):
		t.Fatal("event published before Close was lost")
	}
}

func TestNewPublisher_ConnectFailure(t *testing.T) {
	// Arrange
	cfg := config.NATSConfig{URL: "nats://127.0.0.1:1", Subject: "x", ClientName: "post-pilot-test"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Act
	publisher, err := natspub.NewPublisher(cfg, logger)

	// Assert
	assert.Nil(t, publisher)
	assert.Error(t, err)
}
