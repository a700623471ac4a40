package api

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/quotelens/internal/service"
)

const (
	tagInterval = "quote_interval"
	tagRange    = "quote_range"
)

var registerOnce sync.Once

// registerValidators adds the quote_interval and quote_range tags to gin's
// validator so query binding rejects unsupported values.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation(tagInterval, func(fl validator.FieldLevel) bool {
			return service.ValidInterval(fl.Field().String())
		})
		_ = v.RegisterValidation(tagRange, func(fl validator.FieldLevel) bool {
			return service.ValidRange(fl.Field().String())
		})
	})
}

// bindingMessage renders a binding failure as a client-facing message.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid query parameters"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case tagInterval:
		return fmt.Sprintf("Unsupported interval: %v", fe.Value())
	case tagRange:
		return fmt.Sprintf("Unsupported range: %v", fe.Value())
	default:
		return fmt.Sprintf("Invalid %s", fe.Field())
	}
}
