package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	FirstName string `json:"first_name" validate:"notblank"`
	LastName  string `json:"last_name" validate:"notblank"`
	Email     string `json:"email" validate:"notblank"`
	Notes     string `json:"notes"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		payload samplePayload
		fields  []string
	}{
		{
			name:    "all present",
			payload: samplePayload{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		},
		{
			name:    "missing one",
			payload: samplePayload{FirstName: "Ada", Email: "ada@example.com"},
			fields:  []string{"last_name"},
		},
		{
			name:    "whitespace counts as blank",
			payload: samplePayload{FirstName: "  ", LastName: "\t", Email: "ada@example.com"},
			fields:  []string{"first_name", "last_name"},
		},
		{
			name:    "declared order kept",
			payload: samplePayload{},
			fields:  []string{"first_name", "last_name", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.payload)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var fe *FieldsError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.fields, fe.Fields)
		})
	}
}

func TestFieldsErrorMessage(t *testing.T) {
	err := &FieldsError{Fields: []string{"first_name", "email"}}
	assert.Equal(t, "Missing required fields: first_name, email", err.Error())
}

func TestIsNPINumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"123456789", false},
		{"12345678901", false},
		{"12345a7890", false},
		{"", false},
		{" 1234567890", false},
		{"１２３４５６７８９０", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNPINumber(tt.in), "input %q", tt.in)
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.False(t, IsBlank(" x "))
}

func TestMessages(t *testing.T) {
	assert.Nil(t, Messages(nil))
	assert.Equal(t,
		[]string{"Missing required fields: email"},
		Messages(&FieldsError{Fields: []string{"email"}}),
	)
}
