package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateUserRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Surname, validation.Required, validation.Length(1, 100)),
	)
}

type UpdateUserRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Surname, validation.Required, validation.Length(1, 100)),
	)
}
