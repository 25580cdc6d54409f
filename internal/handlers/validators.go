package handlers

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// faceValueTag validates that an integer is a banknote the dispenser accepts.
const faceValueTag = "facevalue"

// RegisterValidators installs the custom binding tags on gin's validator engine.
func RegisterValidators(catalog *domain.Catalog) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation(faceValueTag, faceValue(catalog))
}

func faceValue(catalog *domain.Catalog) validator.Func {
	return func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return catalog.Contains(domain.Denomination(fl.Field().Int()))
		default:
			return false
		}
	}
}
