package domain

import "errors"

// Error kinds. Every user-facing error unwraps to exactly one of these so the
// transport layer can pick a status code with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Error carries the message returned to API callers together with its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

var (
	ErrMissingFields      = newError(ErrValidation, "Validation failed. Missing fields.")
	ErrInvalidEmail       = newError(ErrValidation, "Validation failed. Invalid email format.")
	ErrInvalidFullName    = newError(ErrValidation, "Validation failed. Full name must contain only alphabetic characters.")
	ErrWeakPassword       = newError(ErrValidation, "Validation failed. Password must be minimum 8 characters, including at least one uppercase letter, one lowercase letter, one digit, and one special character.")
	ErrEditEmailMissing   = newError(ErrValidation, "Email is required to update user.")
	ErrDeleteEmailMissing = newError(ErrValidation, "Email is required to delete user.")
	ErrLoginFieldsMissing = newError(ErrValidation, "Email and password are required.")
	ErrUploadEmailMissing = newError(ErrValidation, "Email is required.")
	ErrNoImageFile        = newError(ErrValidation, "No image file provided.")
	ErrInvalidImageFormat = newError(ErrValidation, "Invalid file format. Only JPEG, PNG, and GIF are allowed.")
	ErrPasswordTooLong    = newError(ErrValidation, "Validation failed. Password must not exceed 72 bytes.")

	ErrUserExists          = newError(ErrConflict, "User already exists with this email.")
	ErrImageAlreadyExists  = newError(ErrConflict, "Image already exists for this user.")
	ErrUploadInProgress    = newError(ErrConflict, "An image upload is already in progress for this user.")
	ErrUserNotFound        = newError(ErrNotFound, "User not found.")
	ErrCredentialsMismatch = newError(ErrInvalidCredentials, "Invalid credentials.")
)
