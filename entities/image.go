package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is an uploaded picture referenced by recipes and steps. The object
// itself lives in the blob store under Path.
type Image struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Path             string    `gorm:"not null" json:"path"`
	OriginalFilename *string   `json:"original_filename,omitempty"`
	Timestamp
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
