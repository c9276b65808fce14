package dto

type CreateUserRequest struct {
	Email    string   `json:"email" validate:"required,email,max=255"`
	FullName string   `json:"full_name" validate:"required,max=200"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=Admin ProjectManager User"`
}

type UpdateUserRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=Admin ProjectManager User"`
}
