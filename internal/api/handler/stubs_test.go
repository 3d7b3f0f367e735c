package handler

import (
	"context"

	"github.com/99minutos/user-service/internal/core/ports"
)

type stubAccountService struct {
	createFn  func(ctx context.Context, in ports.CreateUserInput) error
	editFn    func(ctx context.Context, in ports.EditUserInput) error
	deleteFn  func(ctx context.Context, email string) error
	listAllFn func(ctx context.Context) ([]ports.UserSummary, error)
	loginFn   func(ctx context.Context, email, password string) error
}

func (s *stubAccountService) Create(ctx context.Context, in ports.CreateUserInput) error {
	return s.createFn(ctx, in)
}

func (s *stubAccountService) Edit(ctx context.Context, in ports.EditUserInput) error {
	return s.editFn(ctx, in)
}

func (s *stubAccountService) Delete(ctx context.Context, email string) error {
	return s.deleteFn(ctx, email)
}

func (s *stubAccountService) ListAll(ctx context.Context) ([]ports.UserSummary, error) {
	return s.listAllFn(ctx)
}

func (s *stubAccountService) Login(ctx context.Context, email, password string) error {
	return s.loginFn(ctx, email, password)
}

type stubImageService struct {
	uploadFn func(ctx context.Context, email string, file *ports.ImageFile) (string, error)
}

func (s *stubImageService) Upload(ctx context.Context, email string, file *ports.ImageFile) (string, error) {
	return s.uploadFn(ctx, email, file)
}
