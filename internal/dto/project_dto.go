package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name               string `json:"name" validate:"required,max=200"`
	ProjectLink        string `json:"project_link" validate:"omitempty,max=500"`
	Description        string `json:"description" validate:"omitempty,max=2000"`
	ApproverName       string `json:"approver_name" validate:"required,max=200"`
	NumberOfMilestones int    `json:"number_of_milestones" validate:"gte=1,lte=100"`
}

type UpdateProjectRequest struct {
	Name               string `json:"name" validate:"required,max=200"`
	ProjectLink        string `json:"project_link" validate:"omitempty,max=500"`
	Description        string `json:"description" validate:"omitempty,max=2000"`
	ApproverName       string `json:"approver_name" validate:"required,max=200"`
	Status             string `json:"status" validate:"required,oneof=Pending InProgress Completed Rejected"`
	NumberOfMilestones int    `json:"number_of_milestones" validate:"gte=1,lte=100"`
}

type ProjectResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Name               string               `json:"name"`
	ProjectLink        string               `json:"project_link"`
	Description        string               `json:"description"`
	ApproverName       string               `json:"approver_name"`
	Status             string               `json:"status"`
	NumberOfMilestones int                  `json:"number_of_milestones"`
	CreatedByUserID    uuid.UUID            `json:"created_by_user_id"`
	CreatedByUserName  string               `json:"created_by_user_name"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          *time.Time           `json:"updated_at"`
	Attachments        []AttachmentResponse `json:"attachments"`
	Milestones         []MilestoneResponse  `json:"milestones"`
}

type AttachmentResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
