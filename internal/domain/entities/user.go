package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The login id is the external identifier
// carried in tokens; the uuid primary key stays internal.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LoginID      string    `json:"login_id" gorm:"column:login_id;type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text;not null"` // Never expose in JSON
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`

	// Deleting a user removes all of their summaries
	Summaries []Summary `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewUser creates a new user with a fresh id
func NewUser(loginID, passwordHash, name, email string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.New(),
		LoginID:      loginID,
		PasswordHash: passwordHash,
		Name:         name,
		Email:        email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate validates user data
func (u *User) Validate() error {
	if u.LoginID == "" {
		return ErrInvalidLoginID
	}
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// PublicUser is a user with sensitive fields removed
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	LoginID   string    `json:"login_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPublic converts User to PublicUser
func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		LoginID:   u.LoginID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
