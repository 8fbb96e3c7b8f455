package request

import (
	"slotbook/internal/domain/booking"
	"slotbook/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("actor_role", func(fl validator.FieldLevel) bool {
		return booking.ActorRole(fl.Field().String()).IsValid()
	})
}
