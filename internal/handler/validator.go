package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// FormValidator подключает go-playground/validator к echo.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator создает валидатор, который называет поля по тегу form.
func NewFormValidator() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &FormValidator{validate: v}
}

func (v *FormValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
