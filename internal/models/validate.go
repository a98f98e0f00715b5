package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"industrial-catalog/internal/catalog"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
)

// ValidPhone acepta un "+" opcional y hasta dieciséis dígitos, ignorando espacios.
// El valor vacío es válido; usar required para exigirlo.
func ValidPhone(phone string) bool {
	phone = strings.Join(strings.Fields(phone), "")
	return phone == "" || phonePattern.MatchString(phone)
}

// Validator devuelve el validador compartido. Usa las mismas etiquetas
// `binding` que gin y reporta los nombres de campo JSON.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.SetTagName("binding")
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return ValidPhone(fl.Field().String())
		})
	})
	return validate
}

// Validate valida un registro y convierte el primer fallo en ValidationError
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &catalog.ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		}
	}
	return err
}
