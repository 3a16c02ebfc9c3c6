package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"size:320;not null;uniqueIndex" json:"email"`
	HashedPassword string    `gorm:"size:1024;not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`

	Rates []RecipeRate `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
