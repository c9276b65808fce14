package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pmtrack/backend/internal/dto"
	"github.com/pmtrack/backend/internal/models"
	"github.com/pmtrack/backend/internal/policy"
)

var (
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrNotAchieved       = errors.New("Milestone must be achieved before it can be approved")
)

type MilestoneService struct {
	db *gorm.DB
}

func NewMilestoneService(db *gorm.DB) *MilestoneService {
	return &MilestoneService{db: db}
}

func (s *MilestoneService) ListByProject(projectID uuid.UUID) ([]models.Milestone, error) {
	var milestones []models.Milestone
	err := s.db.
		Preload("ApprovedByUser").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&milestones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	return milestones, nil
}

func (s *MilestoneService) Get(id uuid.UUID) (*models.Milestone, error) {
	var milestone models.Milestone
	err := s.db.Preload("ApprovedByUser").First(&milestone, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMilestoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load milestone: %w", err)
	}
	return &milestone, nil
}

func (s *MilestoneService) Create(req *dto.CreateMilestoneRequest) (*models.Milestone, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	milestone := models.Milestone{
		ID:          uuid.New(),
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.db.Create(&milestone).Error; err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}
	return &milestone, nil
}

// Update overwrites name and description and applies the achieved flag.
// Approval fields are never touched here.
func (s *MilestoneService) Update(id uuid.UUID, req *dto.UpdateMilestoneRequest) error {
	var milestone models.Milestone
	if err := s.db.First(&milestone, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMilestoneNotFound
		}
		return fmt.Errorf("failed to load milestone: %w", err)
	}

	milestone.Name = req.Name
	milestone.Description = req.Description
	milestone.SetAchieved(req.IsAchieved, time.Now())

	if err := s.db.Save(&milestone).Error; err != nil {
		return fmt.Errorf("failed to update milestone: %w", err)
	}
	return nil
}

// Approve records an approval decision for an achieved milestone. Every call
// overwrites the previous decision, approver and timestamp.
func (s *MilestoneService) Approve(id uuid.UUID, req *dto.ApproveMilestoneRequest, caller policy.Caller) error {
	if d := policy.Evaluate(caller, policy.OpMilestoneApprove, uuid.Nil); !d.Allowed {
		return ErrForbidden
	}

	var milestone models.Milestone
	if err := s.db.First(&milestone, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMilestoneNotFound
		}
		return fmt.Errorf("failed to load milestone: %w", err)
	}

	if !milestone.CanBeApproved() {
		return ErrNotAchieved
	}

	milestone.RecordDecision(req.IsApproved, req.ApprovalComments, caller.ID, time.Now())

	if err := s.db.Save(&milestone).Error; err != nil {
		return fmt.Errorf("failed to approve milestone: %w", err)
	}
	return nil
}

func (s *MilestoneService) Delete(id uuid.UUID, caller policy.Caller) error {
	if d := policy.Evaluate(caller, policy.OpMilestoneDelete, uuid.Nil); !d.Allowed {
		return ErrForbidden
	}

	var milestone models.Milestone
	if err := s.db.First(&milestone, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMilestoneNotFound
		}
		return fmt.Errorf("failed to load milestone: %w", err)
	}

	if err := s.db.Delete(&milestone).Error; err != nil {
		return fmt.Errorf("failed to delete milestone: %w", err)
	}
	return nil
}
