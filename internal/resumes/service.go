package resumes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/storage/object"
	"resume-builder-backend/internal/shared/telemetry"
	"resume-builder-backend/internal/shared/util"
)

const (
	defaultSignedURLTTL     = 60 * time.Second
	defaultProbeConcurrency = 4
)

// Service contains business logic for resume uploads and listings.
type Service struct {
	Store object.BlobStore
	Repo  Repo

	// SignedURLTTL bounds download link validity; the storage backend
	// enforces expiry.
	SignedURLTTL time.Duration
	// ProbeConcurrency caps the existence-probe fan-out during listing.
	ProbeConcurrency int
	// Now is overridable for tests.
	Now func() time.Time
}

// Upload stores the PDF under the user's deterministic key and records the
// metadata row. The blob write and the metadata write are not transactional;
// a metadata failure after a successful blob write surfaces as ErrMetadataSave
// with no rollback.
func (s *Service) Upload(ctx context.Context, userID int64, fileName string, r io.Reader) (Resume, error) {
	if userID <= 0 || fileName == "" {
		return Resume{}, ErrInvalidInput
	}
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.save(ctx, userID, sanitized, r)
}

// SaveFromBuilder decodes the builder payload, derives the stored file name
// from it, and stores the rendered PDF like a regular upload.
func (s *Service) SaveFromBuilder(ctx context.Context, userID int64, rawData []byte, r io.Reader) (Resume, error) {
	if userID <= 0 {
		return Resume{}, ErrInvalidInput
	}
	var data BuilderData
	if err := json.Unmarshal(rawData, &data); err != nil {
		return Resume{}, fmt.Errorf("parse resume data: %w", err)
	}
	fileName := BuilderFileName(data.PersonalInfo.FullName, s.now())
	return s.save(ctx, userID, fileName, r)
}

func (s *Service) save(ctx context.Context, userID int64, fileName string, r io.Reader) (Resume, error) {
	key := object.ResumeKey(userID, fileName)

	size, err := s.Store.Put(ctx, key, r)
	if err != nil {
		return Resume{}, fmt.Errorf("store resume blob: %w", err)
	}

	rec := Resume{
		UserID:     userID,
		FileName:   fileName,
		StorageKey: key,
		UploadedAt: s.now(),
	}
	id, err := s.Repo.Create(ctx, rec)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrMetadataSave, err)
	}
	rec.ID = id

	metrics.IncResumeUploads()
	telemetry.Info("resume.saved", map[string]any{
		"resume_id":  rec.ID,
		"user_id":    userID,
		"file_name":  fileName,
		"size_bytes": size,
	})
	return rec, nil
}

// List fetches the user's metadata rows, probes each blob, and returns
// entries whose blob still exists, each with a temporary signed URL. Rows
// whose blob is gone are dropped silently, never deleted. Probes run with a
// bounded fan-out; response order stays store insertion order.
func (s *Service) List(ctx context.Context, userID int64) ([]ResumeLink, error) {
	if userID <= 0 {
		return nil, ErrInvalidInput
	}

	start := time.Now()
	rows, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list resume records: %w", err)
	}

	links := make([]*ResumeLink, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.probeConcurrency())
	for i, rec := range rows {
		i, rec := i, rec
		g.Go(func() error {
			// A failed probe is treated the same as a missing blob: the
			// entry is skipped, not reported.
			ok, err := s.Store.Exists(gctx, rec.StorageKey)
			if err != nil || !ok {
				return nil
			}
			url, err := s.Store.SignedReadURL(gctx, rec.StorageKey, s.ttl())
			if err != nil {
				return nil
			}
			links[i] = &ResumeLink{
				ID:         rec.ID,
				FileName:   rec.FileName,
				UploadedAt: rec.UploadedAt,
				URL:        url,
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]ResumeLink, 0, len(rows))
	for _, link := range links {
		if link != nil {
			out = append(out, *link)
		}
	}

	metrics.IncResumeListings()
	metrics.AddOrphansDropped(len(rows) - len(out))
	metrics.ObserveListingDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return out, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) ttl() time.Duration {
	if s.SignedURLTTL > 0 {
		return s.SignedURLTTL
	}
	return defaultSignedURLTTL
}

func (s *Service) probeConcurrency() int {
	if s.ProbeConcurrency > 0 {
		return s.ProbeConcurrency
	}
	return defaultProbeConcurrency
}
