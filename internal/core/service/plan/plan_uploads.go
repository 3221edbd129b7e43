package plan

import (
	"context"
	"fmt"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

type planCall func(ctx context.Context, postID string, requests []port.UploadPlanRequest) ([]domain.UploadGrant, error)

// PlanUploads requests upload grants for every file the post needs and
// assigns them back onto the descriptors. Images (thumbnail, OGP, gallery)
// and videos (sample only) go to distinct authorization endpoints; the main
// video is staged through temp storage and never planned here. A request is
// only issued for a non-empty partition, and the backend associates grants
// with entries positionally, so input order is preserved throughout.
func (s *plannerService) PlanUploads(ctx context.Context, postID string, files []*domain.MediaFile) error {

	var images, videos []*domain.MediaFile
	for _, f := range files {
		if f.Orientation == "" {
			return fmt.Errorf("%w: %s %s", domain.ErrOrientationUnresolved, f.Kind, f.ID)
		}
		switch f.Kind {
		case domain.MediaKindThumbnail, domain.MediaKindOgp, domain.MediaKindGalleryImage:
			images = append(images, f)
		case domain.MediaKindSampleVideo:
			videos = append(videos, f)
		case domain.MediaKindMainVideo:
			// staged via temp upload + batch trigger
		}
	}

	if err := s.planPartition(ctx, postID, images, s.api.PlanImageUploads); err != nil {
		return err
	}
	if err := s.planPartition(ctx, postID, videos, s.api.PlanVideoUploads); err != nil {
		return err
	}

	return nil
}

func (s *plannerService) planPartition(ctx context.Context, postID string, files []*domain.MediaFile, call planCall) error {
	if len(files) == 0 {
		return nil
	}

	grants, err := call(ctx, postID, planRequests(files))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPlanningRejected, err)
	}
	if len(grants) != len(files) {
		return fmt.Errorf("%w: got %d grants for %d files", domain.ErrPlanningRejected, len(grants), len(files))
	}

	for i := range files {
		grant := grants[i]
		files[i].Grant = &grant
	}
	return nil
}
