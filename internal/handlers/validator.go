package handlers

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"industrial-catalog/internal/models"
)

type structValidator struct {
	validate *validator.Validate
}

// NewValidator adapta el validador de models a gin para que el binding use
// las mismas reglas (incluida "phone").
func NewValidator() binding.StructValidator {
	return structValidator{validate: models.Validator()}
}

func (v structValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	return v.validate.Struct(obj)
}

func (v structValidator) Engine() any {
	return v.validate
}
