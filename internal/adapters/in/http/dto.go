package http

import (
	"time"

	"setralog/internal/core/application/usecases/commands"
	"setralog/internal/core/application/usecases/queries"
	"setralog/internal/core/domain/model/order"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RepresentativeDTO struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

func (r *RepresentativeDTO) toInput() *commands.RepresentativeInput {
	if r == nil {
		return nil
	}
	return &commands.RepresentativeInput{Name: r.Name, Phone: r.Phone, Position: r.Position}
}

type RegisterRequest struct {
	Email                  string             `json:"email"`
	Password               string             `json:"password"`
	ConfirmPassword        string             `json:"confirmPassword"`
	Name                   string             `json:"name"`
	RUT                    string             `json:"rut"`
	Phone                  string             `json:"phone"`
	Role                   string             `json:"role"`
	BusinessName           string             `json:"businessName,omitempty"`
	BusinessAddress        string             `json:"businessAddress,omitempty"`
	BusinessRepresentative *RepresentativeDTO `json:"businessRepresentative,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UpdateProfileRequest is a partial update: absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name                   *string            `json:"name,omitempty"`
	Email                  *string            `json:"email,omitempty"`
	RUT                    *string            `json:"rut,omitempty"`
	Phone                  *string            `json:"phone,omitempty"`
	BusinessName           *string            `json:"businessName,omitempty"`
	BusinessAddress        *string            `json:"businessAddress,omitempty"`
	BusinessRepresentative *RepresentativeDTO `json:"businessRepresentative,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type CreateOrderRequest struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Height      float64 `json:"height"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Weight      float64 `json:"weight"`
}

func (r CreateOrderRequest) toParams() order.ShipmentParams {
	return order.ShipmentParams{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Quantity:    r.Quantity,
		Height:      r.Height,
		Length:      r.Length,
		Width:       r.Width,
		Weight:      r.Weight,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID                     string             `json:"id"`
	Email                  string             `json:"email"`
	Name                   string             `json:"name"`
	RUT                    string             `json:"rut"`
	Phone                  string             `json:"phone"`
	Role                   string             `json:"role"`
	BusinessName           string             `json:"businessName,omitempty"`
	BusinessAddress        string             `json:"businessAddress,omitempty"`
	BusinessRepresentative *RepresentativeDTO `json:"businessRepresentative,omitempty"`
}

func newUserResponse(v queries.UserView) UserResponse {
	resp := UserResponse{
		ID:              v.ID.String(),
		Email:           v.Email,
		Name:            v.Name,
		RUT:             v.RUT,
		Phone:           v.Phone,
		Role:            v.Role.String(),
		BusinessName:    v.BusinessName,
		BusinessAddress: v.BusinessAddress,
	}
	if v.Representative != nil {
		resp.BusinessRepresentative = &RepresentativeDTO{
			Name:     v.Representative.Name,
			Phone:    v.Representative.Phone,
			Position: v.Representative.Position,
		}
	}
	return resp
}

type OrderResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	UserEmail   string    `json:"userEmail,omitempty"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Height      float64   `json:"height"`
	Length      float64   `json:"length"`
	Width       float64   `json:"width"`
	Weight      float64   `json:"weight"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newOrderResponse(v queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:          v.ID,
		UserID:      v.OwnerID.String(),
		UserEmail:   v.OwnerEmail,
		Name:        v.Name,
		Quantity:    v.Quantity,
		Description: v.Description,
		Address:     v.Address,
		Height:      v.Height,
		Length:      v.Length,
		Width:       v.Width,
		Weight:      v.Weight,
		Status:      v.Status.String(),
		CreatedAt:   v.CreatedAt,
	}
}
