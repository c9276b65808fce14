package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Milestone struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	Name             string     `gorm:"not null;size:200" json:"name"`
	Description      string     `gorm:"size:1000" json:"description"`
	IsAchieved       bool       `gorm:"not null;default:false" json:"is_achieved"`
	IsApproved       bool       `gorm:"not null;default:false" json:"is_approved"`
	ApprovalComments string     `gorm:"type:text" json:"approval_comments"`
	AchievedDate     *time.Time `json:"achieved_date"`
	ApprovedDate     *time.Time `json:"approved_date"`
	ApprovedByUserID *uuid.UUID `gorm:"type:uuid" json:"approved_by_user_id"`
	CreatedAt        time.Time  `json:"created_at"`

	Project        *Project `gorm:"foreignKey:ProjectID" json:"-"`
	ApprovedByUser *User    `gorm:"foreignKey:ApprovedByUserID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SetAchieved applies the achieved flag. The flag is sticky: once a milestone
// has been achieved it cannot return to unachieved, and AchievedDate is set
// exactly once, on the first false->true transition.
func (m *Milestone) SetAchieved(achieved bool, now time.Time) {
	if m.IsAchieved {
		return
	}
	if achieved {
		m.IsAchieved = true
		if m.AchievedDate == nil {
			t := now
			m.AchievedDate = &t
		}
	}
}

// CanBeApproved reports whether an approval decision may be recorded.
func (m *Milestone) CanBeApproved() bool {
	return m.IsAchieved
}

// RecordDecision stores an approval decision. Every call overwrites the
// previous decision, so a rejection can later be reversed (and vice versa).
func (m *Milestone) RecordDecision(approved bool, comments string, approverID uuid.UUID, now time.Time) {
	m.IsApproved = approved
	m.ApprovalComments = comments
	t := now
	m.ApprovedDate = &t
	id := approverID
	m.ApprovedByUserID = &id
}
