package dto

import (
	"time"

	"github.com/GlebRadaev/fruitshop/internal/domain"
)

type RegisterRequestDTO struct {
	Email     string `json:"email" example:"ann@example.com"`
	Password  string `json:"password" example:"apples123"`
	FirstName string `json:"firstName" example:"Ann"`
	LastName  string `json:"lastName" example:"Lee"`
	Phone     string `json:"phone,omitempty" example:"+1 555 0100"`
	Address   string `json:"address,omitempty" example:"1 Orchard Lane"`
}

func (r RegisterRequestDTO) ToInput() domain.RegisterInput {
	return domain.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

type RegisterResponseDTO struct {
	Message string          `json:"message"`
	User    UserResponseDTO `json:"user"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"apples123"`
}

type LoginResponseDTO struct {
	Message string          `json:"message"`
	User    UserResponseDTO `json:"user"`
}

type UpdateProfileRequestDTO struct {
	FirstName *string `json:"firstName,omitempty" example:"Ann"`
	LastName  *string `json:"lastName,omitempty" example:"Lee"`
	Phone     *string `json:"phone,omitempty" example:"+1 555 0100"`
	Address   *string `json:"address,omitempty" example:"2 Grove Street"`
}

func (r UpdateProfileRequestDTO) ToPatch() domain.ProfilePatch {
	return domain.ProfilePatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

type UserResponseDTO struct {
	ID        string   `json:"id" example:"01J9Z3K8Q4T6V2X5Y7B9C1D3E5"`
	Email     string   `json:"email" example:"ann@example.com"`
	FirstName string   `json:"firstName" example:"Ann"`
	LastName  string   `json:"lastName" example:"Lee"`
	Phone     string   `json:"phone" example:"+1 555 0100"`
	Address   string   `json:"address" example:"1 Orchard Lane"`
	CreatedAt string   `json:"createdAt" example:"2024-10-20T12:00:00Z"`
	OrderIDs  []string `json:"orderIds"`
}

func NewUserResponse(u *domain.SessionUser) UserResponseDTO {
	ids := u.OrderIDs
	if ids == nil {
		ids = []string{}
	}
	return UserResponseDTO{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		OrderIDs:  ids,
	}
}
