package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectAttachment struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	FileName    string    `gorm:"not null;size:255" json:"file_name"`
	FilePath    string    `gorm:"not null;size:500" json:"file_path"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	FileSize    int64     `gorm:"not null" json:"file_size"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
}

func (a *ProjectAttachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
