package validator_test

import (
	"testing"

	"emps/inner/employee"
	"emps/inner/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func validRequest() employee.Request {
	return employee.Request{
		Name:              ptr("Rohit Sharma"),
		Designation:       ptr("Senior Developer"),
		Salary:            ptr(55000.00),
		ExperienceYears:   ptr(3.5),
		PerformanceRating: ptr(5),
	}
}

func TestValidator_ValidRequest(t *testing.T) {
	v := validator.New()

	err := v.Validate(validRequest())

	assert.NoError(t, err)
}

func TestValidator_OptionalFieldsMayBeAbsent(t *testing.T) {
	v := validator.New()

	request := employee.Request{
		Name:        ptr("Rohit Sharma"),
		Designation: ptr("Senior Developer"),
	}

	assert.NoError(t, v.Validate(request))
}

func TestValidator_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *employee.Request)
		field  string
		tag    string
	}{
		{
			name:   "missing name",
			mutate: func(r *employee.Request) { r.Name = nil },
			field:  "empName",
			tag:    "required",
		},
		{
			name:   "name too short",
			mutate: func(r *employee.Request) { r.Name = ptr("R") },
			field:  "empName",
			tag:    "min",
		},
		{
			name:   "name with digits",
			mutate: func(r *employee.Request) { r.Name = ptr("R2D2") },
			field:  "empName",
			tag:    "namepattern",
		},
		{
			name:   "name with double space",
			mutate: func(r *employee.Request) { r.Name = ptr("Rohit  Sharma") },
			field:  "empName",
			tag:    "namepattern",
		},
		{
			name:   "missing designation",
			mutate: func(r *employee.Request) { r.Designation = nil },
			field:  "empDesignation",
			tag:    "required",
		},
		{
			name:   "negative salary",
			mutate: func(r *employee.Request) { r.Salary = ptr(-1.0) },
			field:  "empSalary",
			tag:    "gte",
		},
		{
			name:   "negative experience",
			mutate: func(r *employee.Request) { r.ExperienceYears = ptr(-0.5) },
			field:  "empExperienceYears",
			tag:    "gte",
		},
		{
			name:   "rating below range",
			mutate: func(r *employee.Request) { r.PerformanceRating = ptr(0) },
			field:  "empPerformanceRating",
			tag:    "min",
		},
		{
			name:   "rating above range",
			mutate: func(r *employee.Request) { r.PerformanceRating = ptr(6) },
			field:  "empPerformanceRating",
			tag:    "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			request := validRequest()
			tt.mutate(&request)

			err := v.Validate(request)

			require.Error(t, err)
			validationErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "expected ValidationErrors, got %T", err)
			require.NotEmpty(t, validationErrs.Errors)
			assert.Equal(t, tt.field, validationErrs.Errors[0].Field)
			assert.Equal(t, tt.tag, validationErrs.Errors[0].Tag)
		})
	}
}

func TestValidationErrors_FieldMap(t *testing.T) {
	v := validator.New()

	request := employee.Request{
		Salary: ptr(-100.0),
	}

	err := v.Validate(request)
	require.Error(t, err)

	validationErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	fields := validationErrs.FieldMap()
	assert.Contains(t, fields, "empName")
	assert.Contains(t, fields, "empDesignation")
	assert.Contains(t, fields, "empSalary")
}
