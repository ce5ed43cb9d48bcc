package handlers

import (
	"errors"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// documentNumberPattern accepts national id, passport and foreigner card formats
var documentNumberPattern = regexp.MustCompile(`^[A-Za-z0-9-]{4,20}$`)

var registerOnce sync.Once

// RegisterValidators adds the storefront tags to gin's validator; safe to call repeatedly
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("docnumber", func(fl validator.FieldLevel) bool {
			return documentNumberPattern.MatchString(fl.Field().String())
		})
	})
}

// fieldFailed reports whether validation of field failed inside err
func fieldFailed(err error, field string) bool {
	return fieldError(err, field) != nil
}

// fieldError returns the first validation failure for field, nil when it passed
func fieldError(err error, field string) validator.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	for _, fe := range verrs {
		if fe.Field() == field {
			return fe
		}
	}
	return nil
}
