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
	ErrProjectNotFound   = errors.New("project not found")
	ErrForbidden         = errors.New("insufficient role or ownership")
	ErrInvalidAttachment = errors.New("attachment must have a file name and a positive size")
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// List returns all projects, newest first, with nested attachments and
// milestones. Related display names are preloaded so DTO assembly never
// needs lazy traversal.
func (s *ProjectService) List() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Preload("CreatedByUser").
		Preload("Attachments").
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("milestones.created_at ASC")
		}).
		Preload("Milestones.ApprovedByUser").
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := s.db.
		Preload("CreatedByUser").
		Preload("Attachments").
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("milestones.created_at ASC")
		}).
		Preload("Milestones.ApprovedByUser").
		First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return &project, nil
}

func (s *ProjectService) Create(req *dto.CreateProjectRequest, ownerID uuid.UUID) (*models.Project, error) {
	project := models.Project{
		ID:                 uuid.New(),
		Name:               req.Name,
		ProjectLink:        req.ProjectLink,
		Description:        req.Description,
		ApproverName:       req.ApproverName,
		Status:             models.StatusPending,
		NumberOfMilestones: req.NumberOfMilestones,
		CreatedByUserID:    ownerID,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := s.db.Preload("CreatedByUser").First(&project, "id = ?", project.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return &project, nil
}

// Update overwrites the mutable field set. The owning user id is immutable.
func (s *ProjectService) Update(id uuid.UUID, req *dto.UpdateProjectRequest, caller policy.Caller) error {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to load project: %w", err)
	}

	if d := policy.Evaluate(caller, policy.OpProjectUpdate, project.CreatedByUserID); !d.Allowed {
		return ErrForbidden
	}

	now := time.Now()
	project.Name = req.Name
	project.ProjectLink = req.ProjectLink
	project.Description = req.Description
	project.ApproverName = req.ApproverName
	project.Status = req.Status
	project.NumberOfMilestones = req.NumberOfMilestones
	project.UpdatedAt = &now

	if err := s.db.Save(&project).Error; err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes a project and, in the same transaction, all of its
// milestones and attachments. It returns the storage references of the
// deleted attachments so the caller can remove the underlying files.
func (s *ProjectService) Delete(id uuid.UUID, caller policy.Caller) ([]string, error) {
	if d := policy.Evaluate(caller, policy.OpProjectDelete, uuid.Nil); !d.Allowed {
		return nil, ErrForbidden
	}

	var project models.Project
	if err := s.db.Preload("Attachments").First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	refs := make([]string, 0, len(project.Attachments))
	for _, a := range project.Attachments {
		refs = append(refs, a.FilePath)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectAttachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}
	return refs, nil
}

// RegisterAttachment records metadata for an already-stored upload. The byte
// transfer happens before this call; only the bookkeeping lives here.
func (s *ProjectService) RegisterAttachment(projectID uuid.UUID, fileName, storageRef, contentType string, sizeBytes int64) (*models.ProjectAttachment, error) {
	if fileName == "" || sizeBytes <= 0 {
		return nil, ErrInvalidAttachment
	}

	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	attachment := models.ProjectAttachment{
		ID:          uuid.New(),
		ProjectID:   projectID,
		FileName:    fileName,
		FilePath:    storageRef,
		ContentType: contentType,
		FileSize:    sizeBytes,
	}

	if err := s.db.Create(&attachment).Error; err != nil {
		return nil, fmt.Errorf("failed to register attachment: %w", err)
	}
	return &attachment, nil
}
