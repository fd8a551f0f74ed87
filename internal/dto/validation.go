package dto

import (
	"sync"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator engine. It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("propertynumber", validatePropertyNumber)
		}
	})
}

func validatePropertyNumber(fl validator.FieldLevel) bool {
	return domain.IsPropertyNumber(fl.Field().String())
}
