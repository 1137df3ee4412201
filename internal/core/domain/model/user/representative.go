package user

import (
	"errors"
	"strings"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/errs"
)

// Representative is the contact person of a BUSINESS account.
type Representative struct {
	name     string
	phone    kernel.Phone
	position string
}

// NewRepresentative requires all three fields; phone is normalized through kernel.NewPhone.
func NewRepresentative(name, phone, position string) (Representative, error) {
	var errName, errPosition error
	if strings.TrimSpace(name) == "" {
		errName = errs.NewValueIsRequiredError("businessRepresentative.name")
	}
	if strings.TrimSpace(position) == "" {
		errPosition = errs.NewValueIsRequiredError("businessRepresentative.position")
	}
	p, errPhone := kernel.NewPhone(phone)

	if err := errors.Join(errName, errPhone, errPosition); err != nil {
		return Representative{}, err
	}

	return Representative{name: name, phone: p, position: position}, nil
}

func (r Representative) Name() string        { return r.name }
func (r Representative) Phone() kernel.Phone { return r.phone }
func (r Representative) Position() string    { return r.position }
