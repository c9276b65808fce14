package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project statuses.
const (
	StatusPending    = "Pending"
	StatusInProgress = "InProgress"
	StatusCompleted  = "Completed"
	StatusRejected   = "Rejected"
)

type Project struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name               string     `gorm:"not null;size:200" json:"name"`
	ProjectLink        string     `gorm:"size:500" json:"project_link"`
	Description        string     `gorm:"size:2000" json:"description"`
	ApproverName       string     `gorm:"not null;size:200" json:"approver_name"`
	Status             string     `gorm:"not null;size:20;default:'Pending'" json:"status"`
	NumberOfMilestones int        `gorm:"not null" json:"number_of_milestones"`
	CreatedByUserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"created_by_user_id"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	CreatedByUser *User               `gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:RESTRICT" json:"-"`
	Attachments   []ProjectAttachment `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"attachments"`
	Milestones    []Milestone         `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"milestones"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
