package handlers

import (
	"github.com/pmtrack/backend/internal/dto"
	"github.com/pmtrack/backend/internal/models"
)

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Roles:     u.RoleNames(),
		CreatedAt: u.CreatedAt,
	}
}

func toAttachmentResponse(a *models.ProjectAttachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		FileName:    a.FileName,
		FilePath:    a.FilePath,
		ContentType: a.ContentType,
		FileSize:    a.FileSize,
		UploadedAt:  a.UploadedAt,
	}
}

func toMilestoneResponse(m *models.Milestone) dto.MilestoneResponse {
	resp := dto.MilestoneResponse{
		ID:               m.ID,
		ProjectID:        m.ProjectID,
		Name:             m.Name,
		Description:      m.Description,
		IsAchieved:       m.IsAchieved,
		IsApproved:       m.IsApproved,
		ApprovalComments: m.ApprovalComments,
		AchievedDate:     m.AchievedDate,
		ApprovedDate:     m.ApprovedDate,
		ApprovedByUserID: m.ApprovedByUserID,
		CreatedAt:        m.CreatedAt,
	}
	if m.ApprovedByUser != nil {
		resp.ApprovedByUserName = m.ApprovedByUser.FullName
	}
	return resp
}

func toProjectResponse(p *models.Project) dto.ProjectResponse {
	resp := dto.ProjectResponse{
		ID:                 p.ID,
		Name:               p.Name,
		ProjectLink:        p.ProjectLink,
		Description:        p.Description,
		ApproverName:       p.ApproverName,
		Status:             p.Status,
		NumberOfMilestones: p.NumberOfMilestones,
		CreatedByUserID:    p.CreatedByUserID,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
		Attachments:        make([]dto.AttachmentResponse, 0, len(p.Attachments)),
		Milestones:         make([]dto.MilestoneResponse, 0, len(p.Milestones)),
	}
	if p.CreatedByUser != nil {
		resp.CreatedByUserName = p.CreatedByUser.FullName
	}
	for i := range p.Attachments {
		resp.Attachments = append(resp.Attachments, toAttachmentResponse(&p.Attachments[i]))
	}
	for i := range p.Milestones {
		resp.Milestones = append(resp.Milestones, toMilestoneResponse(&p.Milestones[i]))
	}
	return resp
}
