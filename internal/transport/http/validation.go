package http

import goval "github.com/go-playground/validator/v10"

// validator wraps the shared struct validator used by the handlers.
type validator struct {
	v *goval.Validate
}

func newValidator() *validator {
	return &validator{v: goval.New()}
}

func (val *validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}
