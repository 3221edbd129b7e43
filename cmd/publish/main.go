package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"post-pilot/internal/adapters/contentapi/httpapi"
	natsbroker "post-pilot/internal/adapters/eventbroker/nats"
	"post-pilot/internal/adapters/probe/ffprobe"
	"post-pilot/internal/adapters/probe/imagemeta"
	progresssink "post-pilot/internal/adapters/progress"
	"post-pilot/internal/adapters/source"
	"post-pilot/internal/adapters/transport/httpput"
	"post-pilot/internal/config"
	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
	"post-pilot/internal/core/service/classify"
	"post-pilot/internal/core/service/plan"
	"post-pilot/internal/core/service/submit"
	"post-pilot/internal/core/service/tempvideo"
	"post-pilot/internal/core/service/upload"

	"github.com/google/uuid"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	title := flag.String("title", "", "post title")
	description := flag.String("description", "", "post description")
	updateID := flag.String("update", "", "post id to update instead of creating a new post")
	mainVideo := flag.String("main-video", "", "path to the main video")
	sampleVideo := flag.String("sample-video", "", "path to a separate sample video")
	thumbnail := flag.String("thumbnail", "", "path to the thumbnail image")
	ogp := flag.String("ogp", "", "path to the OGP image (omit to let the server generate one)")
	gallery := flag.String("gallery", "", "comma-separated gallery image paths, in display order")
	trimStart := flag.Float64("trim-start", -1, "sample trim start in seconds")
	trimEnd := flag.Float64("trim-end", -1, "sample trim end in seconds")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *title == "" && *updateID == "" {
		logger.Error("a title is required for a new post")
		os.Exit(1)
	}

	// adapters
	apiClient := httpapi.NewClient(cfg.ContentAPI, logger)
	uploader := httpput.NewUploader()
	imageProbe := imagemeta.NewProbe()
	videoProbe := ffprobe.NewProbe(cfg.Upload.FFprobeBin, logger)

	sinks := []port.ProgressSink{progresssink.NewSlogSink(logger)}
	if cfg.NATS.URL != "" {
		publisher, pubErr := natsbroker.NewPublisher(cfg.NATS, logger)
		if pubErr != nil {
			logger.Error("failed to init NATS publisher", "error", pubErr)
			os.Exit(1)
		}
		defer func() {
			if closeErr := publisher.Close(); closeErr != nil {
				logger.Error("failed to close NATS publisher", "error", closeErr)
			}
		}()
		sinks = append(sinks, publisher)
	}

	// services
	classifier := classify.NewClassifierService(imageProbe, videoProbe, cfg.Upload, logger)
	tempVideoService := tempvideo.NewTempVideoService(apiClient, uploader, videoProbe, cfg.Upload, logger)
	plannerService := plan.NewPlannerService(apiClient, logger)
	uploaderService := upload.NewUploaderService(uploader, logger)
	submissionService := submit.NewSubmissionService(apiClient, classifier, plannerService, uploaderService, progresssink.NewFanout(sinks...), logger)

	draft := &domain.PostDraft{
		Mode:     domain.SubmissionModeCreate,
		Metadata: domain.PostMetadata{Title: *title, Description: *description},
	}
	if *updateID != "" {
		draft.Mode = domain.SubmissionModeUpdate
		draft.PostID = *updateID
	}

	if err := attachFiles(draft, *mainVideo, *sampleVideo, *thumbnail, *ogp, *gallery); err != nil {
		logger.Error("failed to attach files", "error", err)
		os.Exit(1)
	}

	// A main video is staged in temp storage before the post exists; the
	// trim range is metadata the batch trigger carries later.
	if main := draft.FileByKind(domain.MediaKindMainVideo); main != nil {
		session, upErr := tempVideoService.UploadMainVideo(ctx, main.Source, func(percent float64) {
			logger.Info("staging main video", "percent", int(percent))
		})
		if upErr != nil {
			logger.Error("failed to stage main video", "error", upErr)
			os.Exit(1)
		}
		logger.Info("main video staged", "temp_storage_key", session.TempStorageKey, "playback_url", session.PlaybackURL)

		if *trimStart >= 0 && *trimEnd > 0 {
			if trimErr := tempVideoService.SelectTrimRange(session, *trimStart, *trimEnd); trimErr != nil {
				logger.Error("trim range rejected", "error", trimErr)
				os.Exit(1)
			}
		}
		draft.TempVideo = session
	}

	result, err := submissionService.Submit(ctx, draft)
	if err != nil {
		var stageErr *domain.SubmissionError
		if errors.As(err, &stageErr) {
			logger.Error("submission failed", "stage", stageErr.Stage, "error", stageErr.Err)
		} else {
			logger.Error("submission failed", "error", err)
		}
		os.Exit(1)
	}

	logger.Info("post published", "post_id", result.PostID)
}

func attachFiles(draft *domain.PostDraft, mainVideo, sampleVideo, thumbnail, ogp, gallery string) error {
	attach := func(kind domain.MediaKind, path string) error {
		if path == "" {
			return nil
		}
		file, err := newMediaFile(kind, path)
		if err != nil {
			return err
		}
		draft.Files = append(draft.Files, file)
		return nil
	}

	if err := attach(domain.MediaKindMainVideo, mainVideo); err != nil {
		return err
	}
	if err := attach(domain.MediaKindSampleVideo, sampleVideo); err != nil {
		return err
	}
	if err := attach(domain.MediaKindThumbnail, thumbnail); err != nil {
		return err
	}
	if err := attach(domain.MediaKindOgp, ogp); err != nil {
		return err
	}
	if gallery != "" {
		for _, path := range strings.Split(gallery, ",") {
			if err := attach(domain.MediaKindGalleryImage, strings.TrimSpace(path)); err != nil {
				return err
			}
		}
	}
	return nil
}

func newMediaFile(kind domain.MediaKind, path string) (*domain.MediaFile, error) {
	src, err := source.NewFile(path, "")
	if err != nil {
		return nil, err
	}

	extension := domain.ExtensionForContentType(src.ContentType())
	if extension == "" {
		return nil, fmt.Errorf("%w: %s (%s)", domain.ErrInvalidFileType, filepath.Base(path), src.ContentType())
	}

	return &domain.MediaFile{
		ID:          uuid.New(),
		Kind:        kind,
		ContentType: src.ContentType(),
		Extension:   extension,
		Source:      src,
		Status:      domain.UploadStatusPending,
	}, nil
}
