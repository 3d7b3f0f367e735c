package ports

import (
	"context"
	"io"
)

// CreateUserInput carries the registration fields.
type CreateUserInput struct {
	FullName string
	Email    string
	Password string
}

// EditUserInput carries the lookup email and the optional new values.
// Empty optional fields are left untouched.
type EditUserInput struct {
	Email    string
	FullName string
	Password string
}

// UserSummary is the listing view of an account.
type UserSummary struct {
	FullName string
	Email    string
	Password string
}

// AccountService defines the account use cases.
type AccountService interface {
	Create(ctx context.Context, in CreateUserInput) error
	Edit(ctx context.Context, in EditUserInput) error
	Delete(ctx context.Context, email string) error
	ListAll(ctx context.Context) ([]UserSummary, error)
	Login(ctx context.Context, email, password string) error
}

// ImageFile is an uploaded file as received by the transport layer.
type ImageFile struct {
	Filename  string
	MediaType string
	Size      int64
	Content   io.Reader
}

// ImageService attaches profile images to accounts.
type ImageService interface {
	// Upload stores the image for email and returns its public path.
	// A nil file means the request carried no image.
	Upload(ctx context.Context, email string, file *ImageFile) (string, error)
}
