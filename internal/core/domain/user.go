package domain

import "time"

// User is the single account record kept in the store.
// Password always holds a bcrypt digest once persisted.
type User struct {
	ID        string    `json:"-"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	ImagePath string    `json:"imagePath,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HasImage reports whether the write-once image path has been assigned.
func (u *User) HasImage() bool {
	return u.ImagePath != ""
}
