package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	RecordedName  string    `gorm:"size:255" json:"recordedName"`
	ContactNumber string    `gorm:"size:50" json:"contactNumber"`
	Email         string    `gorm:"size:255" json:"email"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.RecordedName == "" {
		s.RecordedName = s.Name
	}
	return nil
}
