package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMilestoneRequest struct {
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description" validate:"omitempty,max=1000"`
}

type UpdateMilestoneRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	IsAchieved  bool   `json:"is_achieved"`
}

type ApproveMilestoneRequest struct {
	IsApproved       bool   `json:"is_approved"`
	ApprovalComments string `json:"approval_comments" validate:"omitempty,max=2000"`
}

type MilestoneResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ProjectID          uuid.UUID  `json:"project_id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	IsAchieved         bool       `json:"is_achieved"`
	IsApproved         bool       `json:"is_approved"`
	ApprovalComments   string     `json:"approval_comments"`
	AchievedDate       *time.Time `json:"achieved_date"`
	ApprovedDate       *time.Time `json:"approved_date"`
	ApprovedByUserID   *uuid.UUID `json:"approved_by_user_id"`
	ApprovedByUserName string     `json:"approved_by_user_name"`
	CreatedAt          time.Time  `json:"created_at"`
}
