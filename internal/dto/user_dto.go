package dto

import "github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
	Address string `json:"address,omitempty"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    string(u.Role),
		Avatar:  u.Avatar,
		Address: u.Address,
	}
}

func NewUserList(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type CreateUserRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Role    string `json:"role" validate:"required,oneof=admin staff master"`
	Avatar  string `json:"avatar"`
	Address string `json:"address"`
}

func (r *CreateUserRequest) ToUser() models.User {
	return models.User{
		Name:    r.Name,
		Email:   r.Email,
		Role:    models.Role(r.Role),
		Avatar:  r.Avatar,
		Address: r.Address,
	}
}

type UpdateUserRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Role    *string `json:"role" validate:"omitempty,oneof=admin staff master"`
	Avatar  *string `json:"avatar"`
	Address *string `json:"address"`
}

func (r *UpdateUserRequest) ToPatch() models.UserPatch {
	p := models.UserPatch{
		Name:    r.Name,
		Email:   r.Email,
		Avatar:  r.Avatar,
		Address: r.Address,
	}
	if r.Role != nil {
		role := models.Role(*r.Role)
		p.Role = &role
	}
	return p
}

// UpdateProfileRequest edits the signed-in user. The password fields are
// checked for shape only; demo accounts share one fixed password.
type UpdateProfileRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Avatar          *string `json:"avatar"`
	Address         *string `json:"address"`
	CurrentPassword string  `json:"current_password" validate:"required_with=NewPassword"`
	NewPassword     string  `json:"new_password" validate:"omitempty,min=8"`
	ConfirmPassword string  `json:"confirm_password" validate:"eqfield=NewPassword"`
}

func (r *UpdateProfileRequest) ToPatch() models.UserPatch {
	return models.UserPatch{
		Name:    r.Name,
		Email:   r.Email,
		Avatar:  r.Avatar,
		Address: r.Address,
	}
}
