package identitystore

import (
	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
)

// SnapshotState is the persisted identity state stored under "auth-storage".
type SnapshotState struct {
	Users []UserDTO `json:"users"`
}

// UserDTO is the persisted shape of a user.
type UserDTO struct {
	ID                     string             `json:"id"`
	Email                  string             `json:"email"`
	Password               string             `json:"password"`
	Name                   string             `json:"name"`
	RUT                    string             `json:"rut"`
	Phone                  string             `json:"phone"`
	Role                   string             `json:"role"`
	BusinessName           string             `json:"businessName,omitempty"`
	BusinessAddress        string             `json:"businessAddress,omitempty"`
	BusinessRepresentative *RepresentativeDTO `json:"businessRepresentative,omitempty"`
}

// RepresentativeDTO is the persisted shape of a business representative.
type RepresentativeDTO struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

func fromDomain(u *user.User) UserDTO {
	dto := UserDTO{
		ID:              u.ID().String(),
		Email:           u.Email(),
		Password:        u.Credential(),
		Name:            u.Name(),
		RUT:             u.RUT().String(),
		Phone:           u.Phone().String(),
		Role:            u.Role().String(),
		BusinessName:    u.BusinessName(),
		BusinessAddress: u.BusinessAddress(),
	}
	if rep := u.Representative(); rep != nil {
		dto.BusinessRepresentative = &RepresentativeDTO{
			Name:     rep.Name(),
			Phone:    rep.Phone().String(),
			Position: rep.Position(),
		}
	}
	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	rut, err := kernel.NewRUT(dto.RUT)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	profile := user.Profile{
		Email:           dto.Email,
		Name:            dto.Name,
		RUT:             rut,
		Phone:           phone,
		BusinessName:    dto.BusinessName,
		BusinessAddress: dto.BusinessAddress,
	}
	if r := dto.BusinessRepresentative; r != nil {
		rep, repErr := user.NewRepresentative(r.Name, r.Phone, r.Position)
		if repErr != nil {
			return nil, repErr
		}
		profile.Representative = &rep
	}

	return user.NewUser(id, profile, role, dto.Password)
}
