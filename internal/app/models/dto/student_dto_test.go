package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bindingValidator mirrors gin's binding validation so the request constraints
// can be tested without spinning up a router.
func bindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func validStudentRequest() StudentRequest {
	return StudentRequest{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Department:  "CS",
		Year:        3,
		PhoneNumber: "1234567890",
	}
}

func TestStudentRequestValidation(t *testing.T) {
	v := bindingValidator()

	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, v.Struct(validStudentRequest()))
	})

	mutations := []struct {
		name   string
		mutate func(*StudentRequest)
	}{
		{"name too short", func(r *StudentRequest) { r.Name = "A" }},
		{"name missing", func(r *StudentRequest) { r.Name = "" }},
		{"email malformed", func(r *StudentRequest) { r.Email = "not-an-email" }},
		{"email missing", func(r *StudentRequest) { r.Email = "" }},
		{"department missing", func(r *StudentRequest) { r.Department = "" }},
		{"year below range", func(r *StudentRequest) { r.Year = 0 }},
		{"year above range", func(r *StudentRequest) { r.Year = 5 }},
		{"phone too short", func(r *StudentRequest) { r.PhoneNumber = "123456789" }},
		{"phone too long", func(r *StudentRequest) { r.PhoneNumber = "12345678901" }},
		{"phone non-numeric", func(r *StudentRequest) { r.PhoneNumber = "12345abcde" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			req := validStudentRequest()
			tt.mutate(&req)
			assert.Error(t, v.Struct(req))
		})
	}
}

func TestRegisterRequestValidation(t *testing.T) {
	v := bindingValidator()

	valid := RegisterRequest{
		Username: "registrar",
		Password: "sekret1",
		Email:    "registrar@example.com",
	}
	require.NoError(t, v.Struct(valid))

	t.Run("username too short", func(t *testing.T) {
		req := valid
		req.Username = "abc"
		assert.Error(t, v.Struct(req))
	})

	t.Run("password too short", func(t *testing.T) {
		req := valid
		req.Password = "12345"
		assert.Error(t, v.Struct(req))
	})

	t.Run("email malformed", func(t *testing.T) {
		req := valid
		req.Email = "registrar"
		assert.Error(t, v.Struct(req))
	})
}

func TestHandleValidationError(t *testing.T) {
	v := bindingValidator()

	req := validStudentRequest()
	req.Name = ""
	req.PhoneNumber = "12ab"

	err := v.Struct(req)
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)

	messages, ok := detail.Details.([]string)
	require.True(t, ok)
	assert.Contains(t, messages, "Name is required")
}
