package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var npiPattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validator checks request payloads against their `validate` tags
type Validator interface {
	Validate(payload interface{}) error
}

// FieldsError lists every required field that was missing or blank, in
// the order the fields are declared on the payload struct.
type FieldsError struct {
	Fields []string
}

func (e *FieldsError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(e.Fields, ", "))
}

type validator struct {
	v *playground.Validate
}

func New() Validator {
	v := playground.New()

	// Report json names so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}

	return &validator{v: v}
}

func (v *validator) Validate(payload interface{}) error {
	err := v.v.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &FieldsError{Fields: fields}
}

func notBlank(fl playground.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

// IsBlank reports whether s is empty after trimming whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNPINumber reports whether s is exactly ten ASCII digits
func IsNPINumber(s string) bool {
	return npiPattern.MatchString(s)
}

// Messages flattens a Validate result into response messages
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	return []string{err.Error()}
}
