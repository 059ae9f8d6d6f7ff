package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// буквы и одиночные пробелы между словами
var namePattern = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)

type Validator struct {
	validate *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve ValidationErrors) Error() string {
	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// FieldMap возвращает карту "поле -> сообщение" для конверта ошибки
func (ve ValidationErrors) FieldMap() map[string]string {
	fields := make(map[string]string, len(ve.Errors))
	for _, err := range ve.Errors {
		if _, taken := fields[err.Field]; !taken {
			fields[err.Field] = err.Message
		}
	}
	return fields
}

func New() *Validator {
	validate := validator.New()

	// в сообщениях об ошибках используем имена полей из json-тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// правило для имени и должности: буквы и одиночные пробелы
	_ = validate.RegisterValidation("namepattern", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

func (v *Validator) Validate(request any) error {
	err := v.validate.Struct(request)
	if err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			return v.formatValidationErrors(validateErrs)
		}
		return err
	}
	return nil
}

func (v *Validator) formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors []ValidationError

	for _, err := range errs {
		validationError := ValidationError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: v.getErrorMessage(err),
		}
		validationErrors = append(validationErrors, validationError)
	}

	return ValidationErrors{Errors: validationErrors}
}

func (v *Validator) getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' required", err.Field())
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("Field '%s' must contain at least %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("Field '%s' must be at least %s", err.Field(), err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("Field '%s' must contain a maximum of %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("Field '%s' must be at most %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("Field '%s' must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("Field '%s' must be less than or equal to %s", err.Field(), err.Param())
	case "namepattern":
		return fmt.Sprintf("Field '%s' must contain only letters and single spaces", err.Field())
	case "alphanum":
		return fmt.Sprintf("Field '%s' must contain only letters and numbers", err.Field())
	default:
		return fmt.Sprintf("Field '%s' contains an incorrect value", err.Field())
	}
}
