package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-service/internal/core/domain"
	"github.com/99minutos/user-service/internal/core/ports"
	"github.com/99minutos/user-service/internal/core/upload"
)

const (
	// sniffLen matches the amount of data net/http and mimetype look at.
	sniffLen       = 512
	defaultLockTTL = 30 * time.Second
	// maxNameAttempts bounds the retries when uploads for different
	// accounts land on the same millisecond.
	maxNameAttempts = 5
)

// ImageService attaches a write-once profile image to an account.
type ImageService struct {
	repo         ports.UserRepository
	store        ports.ImageStore
	locker       ports.UploadLocker // optional
	publicPrefix string
	allowed      []string
	lockTTL      time.Duration
	logger       zerolog.Logger
	now          func() time.Time
}

// NewImageService wires the upload flow. publicPrefix is the URL prefix under
// which stored images are served (e.g. "/images"). locker may be nil.
func NewImageService(
	repo ports.UserRepository,
	store ports.ImageStore,
	locker ports.UploadLocker,
	publicPrefix string,
	logger zerolog.Logger,
) *ImageService {
	return &ImageService{
		repo:         repo,
		store:        store,
		locker:       locker,
		publicPrefix: "/" + strings.Trim(publicPrefix, "/"),
		allowed:      upload.DefaultAllowed,
		lockTTL:      defaultLockTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// Upload stores file as the profile image of email and records its public
// path. A user moves from "no image" to "has image" exactly once; any later
// attempt fails with domain.ErrImageAlreadyExists and leaves the path as is.
func (s *ImageService) Upload(ctx context.Context, email string, file *ports.ImageFile) (string, error) {
	if email == "" {
		return "", domain.ErrUploadEmailMissing
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", lookupError("upload image", err)
	}
	if user.HasImage() {
		return "", domain.ErrImageAlreadyExists
	}
	if file == nil || file.Content == nil {
		return "", domain.ErrNoImageFile
	}

	plan := upload.Plan(file.Filename, file.MediaType, s.now(), s.allowed)
	if !plan.Accepted {
		return "", domain.ErrInvalidImageFormat
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("upload image: read file: %w", err)
	}
	head = head[:n]
	if !upload.ContentAllowed(head, s.allowed) {
		return "", domain.ErrInvalidImageFormat
	}

	release, ok := s.lock(ctx, email)
	if !ok {
		return "", domain.ErrUploadInProgress
	}
	defer release()

	name, err := s.save(ctx, file, head)
	if err != nil {
		return "", fmt.Errorf("upload image: store file: %w", err)
	}

	imagePath := s.publicPrefix + "/" + name
	set, err := s.repo.SetImagePathIfEmpty(ctx, email, imagePath)
	if err != nil || !set {
		s.discard(ctx, name)
	}
	if err != nil {
		return "", lookupError("upload image", err)
	}
	if !set {
		return "", domain.ErrImageAlreadyExists
	}

	s.logger.Info().Str("email", email).Str("image_path", imagePath).Msg("image uploaded")
	return imagePath, nil
}

// save writes the file under a fresh time-based name. A name already taken by
// another upload is never overwritten: the timestamp moves forward one
// millisecond and the content is rewound and written again.
func (s *ImageService) save(ctx context.Context, file *ports.ImageFile, head []byte) (string, error) {
	at := s.now()
	content := io.MultiReader(bytes.NewReader(head), file.Content)

	for attempt := 1; ; attempt++ {
		name := upload.Plan(file.Filename, file.MediaType, at, s.allowed).Filename
		err := s.store.Save(ctx, name, file.MediaType, content)
		if !errors.Is(err, ports.ErrImageNameTaken) {
			return name, err
		}
		if attempt == maxNameAttempts {
			return "", err
		}

		seeker, ok := file.Content.(io.Seeker)
		if !ok {
			return "", err
		}
		if _, serr := seeker.Seek(0, io.SeekStart); serr != nil {
			return "", fmt.Errorf("rewind file: %w", serr)
		}
		s.logger.Debug().Str("file", name).Msg("image name taken, retrying")
		content = file.Content
		at = at.Add(time.Millisecond)
	}
}

// lock takes the per-account upload lock. Lock failures are logged and the
// upload continues; the conditional update in the store stays authoritative.
func (s *ImageService) lock(ctx context.Context, email string) (func(), bool) {
	noop := func() {}
	if s.locker == nil {
		return noop, true
	}

	acquired, err := s.locker.Acquire(ctx, email, s.lockTTL)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("upload lock unavailable, continuing without it")
		return noop, true
	}
	if !acquired {
		s.logger.Debug().Str("email", email).Msg("concurrent upload rejected")
		return noop, false
	}

	return func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), email); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to release upload lock")
		}
	}, true
}

func (s *ImageService) discard(ctx context.Context, name string) {
	if err := s.store.Delete(context.WithoutCancel(ctx), name); err != nil {
		s.logger.Warn().Err(err).Str("file", name).Msg("failed to remove orphaned image")
	}
}
