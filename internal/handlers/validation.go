package handlers

import (
	"strings"

	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the custom binding rules used by the wallet DTOs.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("ownertype", validateOwnerType)
}

// validateOwnerType accepts DOCTOR or PHARMACY in any case.
func validateOwnerType(fl validator.FieldLevel) bool {
	return domain.OwnerType(strings.ToUpper(strings.TrimSpace(fl.Field().String()))).Valid()
}
