package router

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"jobtracker/internal/errors"
	"jobtracker/internal/model"
)

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator reports fields by their JSON names and knows the salary enums.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("salary_currency", "oneof="+model.SalaryCurrencyOneOf)
	v.RegisterAlias("salary_period", "oneof="+model.SalaryPeriodOneOf)
	v.RegisterAlias("salary_type", "oneof="+model.SalaryTypeOneOf)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface. The first failing field is
// returned as a ValidationError.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &errors.ValidationError{Message: err.Error()}
	}
	fe := fieldErrs[0]
	return &errors.ValidationError{Field: fe.Field(), Message: ruleMessage(fe)}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof", "salary_currency", "salary_period", "salary_type":
		return fmt.Sprintf("must be one of %s", allowedValues(fe))
	default:
		return "is invalid"
	}
}

func allowedValues(fe validator.FieldError) string {
	switch fe.Tag() {
	case "salary_currency":
		return model.SalaryCurrencyOneOf
	case "salary_period":
		return model.SalaryPeriodOneOf
	case "salary_type":
		return model.SalaryTypeOneOf
	default:
		return fe.Param()
	}
}
