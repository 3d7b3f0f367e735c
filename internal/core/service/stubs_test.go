package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-service/internal/core/domain"
	"github.com/99minutos/user-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User

	findErr   error // if set, FindByEmail returns this error
	createErr error // if set, Create returns this error
	setErr    error // if set, SetImagePathIfEmpty returns this error
	updates   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrUserExists
	}
	clone := *user
	r.byEmail[user.Email] = &clone
	return nil
}

// Update mirrors the Mongo $set: only fullName and password are written.
func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byEmail[user.Email]
	if !ok {
		return domain.ErrUserNotFound
	}
	stored.FullName = user.FullName
	stored.Password = user.Password
	stored.UpdatedAt = user.UpdatedAt
	r.updates++
	return nil
}

func (r *stubUserRepo) DeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byEmail, email)
	return nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*domain.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) SetImagePathIfEmpty(_ context.Context, email, imagePath string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setErr != nil {
		return false, r.setErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return false, domain.ErrUserNotFound
	}
	if u.ImagePath != "" {
		return false, nil
	}
	u.ImagePath = imagePath
	return true, nil
}

func (r *stubUserRepo) get(email string) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byEmail[email]
}

// ---------------------------------------------------------------------------
// Hasher, store and locker stubs
// ---------------------------------------------------------------------------

type stubHasher struct {
	hashErr error
}

func (h *stubHasher) Hash(plaintext string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plaintext, nil
}

func (h *stubHasher) Verify(plaintext, digest string) bool {
	return digest == "hashed:"+plaintext
}

type stubImageStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	saveErr error
	deleted []string
}

func newStubImageStore() *stubImageStore {
	return &stubImageStore{files: make(map[string][]byte)}
}

func (s *stubImageStore) Save(_ context.Context, name, _ string, r io.Reader) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[name]; ok {
		return fmt.Errorf("save %s: %w", name, ports.ErrImageNameTaken)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.files[name] = b
	return nil
}

func (s *stubImageStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, name)
	s.deleted = append(s.deleted, name)
	return nil
}

type stubLocker struct {
	held       map[string]bool
	acquireErr error
	released   []string
}

func newStubLocker() *stubLocker {
	return &stubLocker{held: make(map[string]bool)}
}

func (l *stubLocker) Acquire(_ context.Context, email string, _ time.Duration) (bool, error) {
	if l.acquireErr != nil {
		return false, l.acquireErr
	}
	if l.held[email] {
		return false, nil
	}
	l.held[email] = true
	return true, nil
}

func (l *stubLocker) Release(_ context.Context, email string) error {
	delete(l.held, email)
	l.released = append(l.released, email)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	discardLogger = zerolog.Nop()
	errStoreDown  = errors.New("store unavailable")
)

func seedUser(repo *stubUserRepo, email, imagePath string) {
	repo.byEmail[email] = &domain.User{
		FullName:  "Alice Smith",
		Email:     email,
		Password:  "hashed:StrongP@ss1",
		ImagePath: imagePath,
	}
}
