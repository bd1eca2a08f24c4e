package dto

import (
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// businessdate accepts an empty string (the service defaults it to today) or
// a date in YYYY-MM-DD form.
func businessdate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(domain.DateLayout, value)
	return err == nil
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Registration only fails for a blank tag name.
		_ = v.RegisterValidation("businessdate", businessdate)
	}
}
