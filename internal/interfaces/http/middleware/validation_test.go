package middleware

import (
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationFixture struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Type  string `json:"type" validate:"required,oneof=customer supplier"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("json")
	})

	t.Run("collects per-field details", func(t *testing.T) {
		err := v.Struct(validationFixture{Email: "not-an-email", Type: "vendor"})
		require.Error(t, err)

		resp := FormatValidationErrors(err, "req-42")

		assert.False(t, resp.Success)
		assert.Equal(t, "req-42", resp.Error.RequestID)
		require.Len(t, resp.Error.Details, 3)

		messages := map[string]string{}
		for _, d := range resp.Error.Details {
			messages[d.Field] = d.Message
		}
		assert.Equal(t, "This field is required", messages["name"])
		assert.Equal(t, "Invalid email format", messages["email"])
		assert.Equal(t, "Must be one of: customer supplier", messages["type"])
	})

	t.Run("non-validation errors produce no details", func(t *testing.T) {
		resp := FormatValidationErrors(assert.AnError, "req-43")

		assert.False(t, resp.Success)
		assert.Empty(t, resp.Error.Details)
	})
}
