package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pmtrack/backend/internal/dto"
	"github.com/pmtrack/backend/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrUserReferenced blocks deletion of a user who still owns projects or
	// is an approver-of-record on a milestone.
	ErrUserReferenced = errors.New("user owns projects or approved milestones and cannot be deleted")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Preload("Roles").Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Roles").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	roleNames := req.Roles
	if len(roleNames) == 0 {
		roleNames = []string{models.RoleUser}
	}
	roles, err := s.rolesByName(roleNames)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		FullName: req.FullName,
		Password: string(hash),
		Roles:    roles,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// UpdateRoles replaces the user's role set with the requested one.
func (s *UserService) UpdateRoles(id uuid.UUID, req *dto.UpdateUserRolesRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	roles, err := s.rolesByName(req.Roles)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(user).Association("Roles").Replace(roles); err != nil {
		return nil, fmt.Errorf("failed to update roles: %w", err)
	}

	user.Roles = roles
	return user, nil
}

// Delete removes a user. Deletion is blocked while the user is referenced as
// a project owner or a milestone approver-of-record.
func (s *UserService) Delete(id uuid.UUID) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	var owned int64
	if err := s.db.Model(&models.Project{}).Where("created_by_user_id = ?", id).Count(&owned).Error; err != nil {
		return fmt.Errorf("failed to count owned projects: %w", err)
	}
	var approved int64
	if err := s.db.Model(&models.Milestone{}).Where("approved_by_user_id = ?", id).Count(&approved).Error; err != nil {
		return fmt.Errorf("failed to count approved milestones: %w", err)
	}
	if owned > 0 || approved > 0 {
		return ErrUserReferenced
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		if err := tx.Model(user).Association("Roles").Clear(); err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}

func (s *UserService) ListRoles() ([]string, error) {
	var roles []models.Role
	if err := s.db.Order("name ASC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *UserService) rolesByName(names []string) ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.Where("name IN ?", names).Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	if len(roles) != len(names) {
		return nil, ErrUnknownRole
	}
	return roles, nil
}
