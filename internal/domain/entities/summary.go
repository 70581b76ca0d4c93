package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Summary is the persisted result of one transcribe-and-summarize run.
// Rows are created once and never updated; only the owner may read or delete them.
type Summary struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"type:varchar(255);not null"`
	Summary     string `json:"summary" gorm:"type:varchar(2000);not null"`
	Decisions   string `json:"decisions" gorm:"type:varchar(2000)"`
	ActionItems string `json:"action_items" gorm:"column:action_items;type:varchar(2000)"`

	// Provenance of the AI run
	ModelUsed    string         `json:"model_used" gorm:"type:varchar(100)"`
	ProcessingMs int64          `json:"processing_ms"`
	Usage        datatypes.JSON `json:"usage,omitempty" gorm:"type:jsonb;default:'{}'"`

	// Object key of the retained upload; empty when retention failed
	AudioObject string `json:"-" gorm:"type:varchar(500)"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;<-:create"`

	UserID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	User   *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// OwnedBy reports whether the summary belongs to the given user
func (s *Summary) OwnedBy(userID uuid.UUID) bool {
	return s.UserID == userID
}
