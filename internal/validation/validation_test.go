package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmtrack/backend/internal/dto"
)

func validProject() dto.CreateProjectRequest {
	return dto.CreateProjectRequest{
		Name:               "Platform migration",
		ApproverName:       "Jordan Blake",
		NumberOfMilestones: 5,
	}
}

func TestCreateProject_Valid(t *testing.T) {
	t.Parallel()

	req := validProject()
	require.Nil(t, Struct(&req))
}

func TestCreateProject_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *dto.CreateProjectRequest)
		message string
	}{
		{"empty name", func(r *dto.CreateProjectRequest) { r.Name = "" }, "name is required"},
		{"name too long", func(r *dto.CreateProjectRequest) { r.Name = strings.Repeat("x", 201) }, "name must be at most 200 characters"},
		{"empty approver", func(r *dto.CreateProjectRequest) { r.ApproverName = "" }, "approver_name is required"},
		{"link too long", func(r *dto.CreateProjectRequest) { r.ProjectLink = strings.Repeat("x", 501) }, "project_link must be at most 500 characters"},
		{"description too long", func(r *dto.CreateProjectRequest) { r.Description = strings.Repeat("x", 2001) }, "description must be at most 2000 characters"},
		{"zero milestones", func(r *dto.CreateProjectRequest) { r.NumberOfMilestones = 0 }, "number_of_milestones must be at least 1"},
		{"too many milestones", func(r *dto.CreateProjectRequest) { r.NumberOfMilestones = 101 }, "number_of_milestones must be at most 100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validProject()
			tc.mutate(&req)
			messages := Struct(&req)
			require.NotNil(t, messages)
			require.Contains(t, messages, tc.message)
		})
	}
}

func TestCreateMilestone_Bounds(t *testing.T) {
	t.Parallel()

	req := dto.CreateMilestoneRequest{Name: strings.Repeat("m", 201)}
	messages := Struct(&req)
	require.Contains(t, messages, "name must be at most 200 characters")
	require.Contains(t, messages, "project_id is required")

	req = dto.CreateMilestoneRequest{Name: "Kickoff", Description: strings.Repeat("d", 1001)}
	messages = Struct(&req)
	require.Contains(t, messages, "description must be at most 1000 characters")
}

func TestRegister_PasswordConfirmation(t *testing.T) {
	t.Parallel()

	req := dto.RegisterRequest{
		Email:           "a@example.com",
		FullName:        "A Person",
		Password:        "password-one",
		ConfirmPassword: "password-two",
	}
	messages := Struct(&req)
	require.Contains(t, messages, "confirm_password must match Password")
}

func TestRegister_UnknownRoleRejected(t *testing.T) {
	t.Parallel()

	req := dto.RegisterRequest{
		Email:           "a@example.com",
		FullName:        "A Person",
		Password:        "password-one",
		ConfirmPassword: "password-one",
		Role:            "Superuser",
	}
	messages := Struct(&req)
	require.Contains(t, messages, "role must be one of: Admin, ProjectManager, User")
}
